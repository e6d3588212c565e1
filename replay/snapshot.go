package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duskforge/dungeonturn/component"
)

// TurnSnapshot captures one Step call's fully-resolved message log —
// the exact sequence applied, in order — for recording-mode playback
// and for spec §8's determinism law: replaying the same seed and
// action sequence must reproduce a byte-identical message log.
type TurnSnapshot struct {
	TurnCount int            `yaml:"turn_count"`
	Messages  []component.Msg `yaml:"messages"`
}

// WriteSnapshots serializes a full turn-by-turn snapshot sequence to
// path as a YAML document stream, one document per turn.
func WriteSnapshots(path string, snapshots []TurnSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()
	for _, s := range snapshots {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode snapshot turn %d: %w", s.TurnCount, err)
		}
	}
	return nil
}

// ReadSnapshots parses a YAML document stream written by
// WriteSnapshots back into memory, for comparison against a fresh
// replay's output.
func ReadSnapshots(path string) ([]TurnSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot file %s: %w", path, err)
	}
	defer f.Close()

	var snapshots []TurnSnapshot
	dec := yaml.NewDecoder(f)
	for {
		var s TurnSnapshot
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return snapshots, fmt.Errorf("decode snapshot file %s: %w", path, err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

// Equal reports whether two snapshot sequences are identical, field
// for field — the check spec §8's replay-determinism scenario runs
// against two independently produced recordings of the same seed and
// action sequence.
func Equal(a, b []TurnSnapshot) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].TurnCount != b[i].TurnCount {
			return false
		}
		if len(a[i].Messages) != len(b[i].Messages) {
			return false
		}
		for j := range a[i].Messages {
			if a[i].Messages[j] != b[i].Messages[j] {
				return false
			}
		}
	}
	return true
}
