package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordingSession names one recorded playthrough. Callers can build
// the paths they hand to the replay package (which takes plain paths)
// from FileBase, grounded on the pack's uuid-named-artifact pattern
// (opd-ai-goldbox-rpg).
type RecordingSession struct {
	ID        uuid.UUID
	StartedAt time.Time
}

// NewRecordingSession mints a session id for the current moment.
func NewRecordingSession(startedAt time.Time) RecordingSession {
	return RecordingSession{ID: uuid.New(), StartedAt: startedAt}
}

// FileBase returns the filename stem recordings under this session
// share, e.g. "20260731T120000Z-3fa85f64" (no extension).
func (s RecordingSession) FileBase() string {
	return fmt.Sprintf("%s-%s", s.StartedAt.UTC().Format("20060102T150405Z"), s.ID.String()[:8])
}
