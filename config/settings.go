// Package config decodes the process-external settings surface spec.md
// §6 names as "advisory, never core": repeat delay, frame rate, map
// hot-reload, map source selection and per-entity stat tuning. None of
// it is read by the simulation core itself — engine.Stats values are
// handed to the entity factories by the caller, same as any other
// config consumer would.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/duskforge/dungeonturn/engine"
)

// MapLoad selects how the caller should obtain the starting Map, per
// spec.md §6's "map_load: map-source selection (Empty | ProcGen(name)
// | TestMap | ...)".
type MapLoad struct {
	Kind string `toml:"kind"` // "empty", "procgen", or "testmap"
	Name string `toml:"name"` // generator or fixture name, meaningful only for "procgen"/"testmap"
}

const (
	MapLoadEmpty   = "empty"
	MapLoadProcGen = "procgen"
	MapLoadTestMap = "testmap"
)

// Settings is the full TOML-decoded settings surface.
type Settings struct {
	RepeatDelay           float64             `toml:"repeat_delay"`
	FrameRate             int                 `toml:"frame_rate"`
	LoadMapFileEveryFrame bool                `toml:"load_map_file_every_frame"`
	Recording             bool                `toml:"recording"`
	MapLoad               MapLoad             `toml:"map_load"`
	Entities              map[string]EntityStats `toml:"entities"`
}

// EntityStats mirrors engine.Stats field-for-field as the TOML-facing
// shape, kept separate so a config-file rename doesn't ripple into the
// core's factory signatures.
type EntityStats struct {
	HP            int `toml:"hp"`
	Power         int `toml:"power"`
	Defense       int `toml:"defense"`
	HearingRadius int `toml:"hearing_radius"`
	SightRadius   int `toml:"sight_radius"`
}

// ToEngineStats converts the decoded config row into the type the
// entity factories accept.
func (e EntityStats) ToEngineStats() engine.Stats {
	return engine.Stats{HP: e.HP, Power: e.Power, Defense: e.Defense, HearingRadius: e.HearingRadius, SightRadius: e.SightRadius}
}

// Load reads and decodes a settings file, filling in defaults() first
// so a partial file only overrides what it names.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in settings with no file applied, for
// callers that have no settings.toml to load (e.g. the CLI with no
// --config flag given).
func Default() *Settings {
	return defaults()
}

func defaults() *Settings {
	return &Settings{
		RepeatDelay: 0.3,
		FrameRate:   60,
		MapLoad:     MapLoad{Kind: MapLoadEmpty},
		Entities: map[string]EntityStats{
			"player": {HP: 20, Power: 4, Defense: 1, HearingRadius: 0, SightRadius: 0},
			"gol":    {HP: 12, Power: 3, Defense: 1, HearingRadius: 6, SightRadius: 8},
			"pawn":   {HP: 6, Power: 2, Defense: 0, HearingRadius: 5, SightRadius: 6},
			"mouse":  {HP: 2, Power: 0, Defense: 0, HearingRadius: 4, SightRadius: 4},
		},
	}
}
