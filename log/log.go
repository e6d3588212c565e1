// Package log wraps sirupsen/logrus with the level/field conventions
// the CLI (cmd/dungeonturn) uses: Debug for each resolved message,
// Info per completed step, Warn when the settings file cannot be
// loaded, Error immediately before an InvariantViolation aborts the
// run. The turn stepper, effect resolver and AI planner do not log.
// Grounded on the genre-reference pull of logrus into a
// tile/turn game (other_examples/.../HexSleeves-ai-go,
// other_examples/.../opd-ai-goldbox-rpg), since the teacher itself has
// no structured logger (it prints straight to the terminal it owns).
package log

import "github.com/sirupsen/logrus"

// Logger is the subset of *logrus.Entry this module's callers use,
// kept as an interface so tests can swap in a no-op implementation.
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

type entry struct {
	e *logrus.Entry
}

// New builds a Logger at the given level ("debug", "info", "warn", or
// "error"; an unrecognized level falls back to "info").
func New(level string) Logger {
	l := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return entry{e: logrus.NewEntry(l)}
}

func (l entry) WithField(key string, value any) Logger {
	return entry{e: l.e.WithField(key, value)}
}

func (l entry) WithFields(fields map[string]any) Logger {
	return entry{e: l.e.WithFields(logrus.Fields(fields))}
}

func (l entry) WithError(err error) Logger {
	return entry{e: l.e.WithError(err)}
}

func (l entry) Debug(args ...any) { l.e.Debug(args...) }
func (l entry) Info(args ...any)  { l.e.Info(args...) }
func (l entry) Warn(args ...any)  { l.e.Warn(args...) }
func (l entry) Error(args ...any) { l.e.Error(args...) }
