// Package replay is the action-log/replay surface spec.md §6 names as
// "advisory, never core": a line-delimited JSON log of every input
// action a session received, replayable in order, plus a YAML snapshot
// of each turn's resolved message log for determinism diff-testing
// (spec §8's "message log byte-identical" replay law). Grounded on the
// teacher's engine/fsm/loader.go JSON-decode idiom, generalized from a
// one-shot config blob to an append-only line-delimited stream.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/core"
)

// InputAction is one recorded turn input: the acting entity and the
// Action it submitted, stamped with the wall-clock time it arrived.
type InputAction struct {
	At     time.Time       `json:"at"`
	Entity core.Entity     `json:"entity"`
	Action component.Action `json:"action"`
}

// Recorder appends InputAction values to a line-delimited JSON file as
// a session plays.
type Recorder struct {
	w   io.WriteCloser
	enc *json.Encoder
}

// NewRecorder creates (or truncates) path and returns a Recorder
// writing to it.
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create action log %s: %w", path, err)
	}
	return &Recorder{w: f, enc: json.NewEncoder(f)}, nil
}

// Record appends one action to the log.
func (r *Recorder) Record(ia InputAction) error {
	if err := r.enc.Encode(ia); err != nil {
		return fmt.Errorf("encode action: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (r *Recorder) Close() error {
	return r.w.Close()
}

// Load reads an entire action log into memory, in chronological
// (file) order.
func Load(path string) ([]InputAction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open action log %s: %w", path, err)
	}
	defer f.Close()

	var actions []InputAction
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var ia InputAction
		if err := json.Unmarshal(scanner.Bytes(), &ia); err != nil {
			return nil, fmt.Errorf("decode action log %s: %w", path, err)
		}
		actions = append(actions, ia)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan action log %s: %w", path, err)
	}
	return actions, nil
}

// Player replays a loaded action log one entry at a time, in order
// — spec §6's "replay by pop-from-tail" read the other direction: the
// log is written oldest-first, so replay pops oldest-first too.
type Player struct {
	actions []InputAction
	pos     int
}

// NewPlayer wraps a loaded action slice for sequential replay.
func NewPlayer(actions []InputAction) *Player {
	return &Player{actions: actions}
}

// Next returns the next recorded action, or ok=false once the log is
// exhausted.
func (p *Player) Next() (InputAction, bool) {
	if p.pos >= len(p.actions) {
		return InputAction{}, false
	}
	ia := p.actions[p.pos]
	p.pos++
	return ia, true
}

// Remaining reports how many actions are left to replay.
func (p *Player) Remaining() int {
	return len(p.actions) - p.pos
}
