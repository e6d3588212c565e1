// Command dungeonturn is the CLI boundary spec.md §6 describes as
// "advisory; not core": it wires seed, settings file, replay path and
// log level into a Game on an empty 80x50 map and drives it from a
// replayed action log, logging each resolved message at debug level
// through logrus. There is no map-source or recording-name flag.
// Grounded on the urfave/cli/v3 flag/Action shape (wricardo-tesla-road-trip-game's
// go.mod pulls this exact library for its own CLI boundary) and on
// sirupsen/logrus for levelled output (see log/ package).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/duskforge/dungeonturn/component"
	"github.com/duskforge/dungeonturn/config"
	"github.com/duskforge/dungeonturn/core"
	"github.com/duskforge/dungeonturn/engine"
	dtlog "github.com/duskforge/dungeonturn/log"
	"github.com/duskforge/dungeonturn/mapgrid"
	"github.com/duskforge/dungeonturn/replay"
	"github.com/duskforge/dungeonturn/sim"
)

func main() {
	cmd := &cli.Command{
		Name:  "dungeonturn",
		Usage: "drive the dungeon-turn simulation core from a recorded action log",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "seed", Value: 0, Usage: "RNG seed (0 is remapped to 1)"},
			&cli.StringFlag{Name: "config", Usage: "path to a settings.toml file (defaults are used if omitted)"},
			&cli.StringFlag{Name: "replay", Usage: "path to a recorded action log (line-delimited JSON) to play back"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "logrus level: debug, info, warn, error"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "dungeonturn:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger := dtlog.New(cmd.String("log-level"))

	settings := defaultSettingsOrLoad(logger, cmd.String("config"))

	es := engine.NewEntityStore()
	m := mapgrid.New(80, 50)
	playerStats := settings.Entities["player"].ToEngineStats()
	player := es.MakePlayer(core.Point{X: 0, Y: 0}, playerStats)

	g := sim.New(es, m, uint32(cmd.Uint("seed")))
	logger.WithField("seed", cmd.Uint("seed")).Info("game initialized")

	replayPath := cmd.String("replay")
	if replayPath == "" {
		logger.Info("no --replay given; nothing to step through")
		return nil
	}

	actions, err := replay.Load(replayPath)
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}

	for i, ia := range actions {
		if err := g.Step(player, ia.Action); err != nil {
			logger.WithError(err).WithField("step", i).Error("invariant violation, aborting")
			return err
		}
		for _, msg := range g.Log.TurnMessages() {
			logger.WithFields(fieldsForMsg(msg)).Debug("message resolved")
		}
		logger.WithField("turn_count", g.TurnCount).WithField("state", g.State).Info("step complete")
	}
	return nil
}

func defaultSettingsOrLoad(logger dtlog.Logger, path string) *config.Settings {
	if path == "" {
		return config.Default()
	}
	s, err := config.Load(path)
	if err != nil {
		logger.WithError(err).Warn("failed to load settings file, using built-in defaults")
		return config.Default()
	}
	return s
}

func fieldsForMsg(msg component.Msg) map[string]any {
	return map[string]any{
		"kind":   msg.Kind,
		"entity": msg.Entity,
		"target": msg.Target,
	}
}
