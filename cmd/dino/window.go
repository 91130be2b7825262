package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and start a run.

Controls:
  Space/Up/W  - Jump (also starts the game); click or tap works too
  Down/S      - Duck while held
  R/Enter     - Restart, or click the restart button
  M           - Mute
  Q/Esc       - Quit

Examples:
  dino window
  dino window --scale 2
  dino window --difficulty hard --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size as a multiple of the playfield")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runWindow(_ *cobra.Command, _ []string) {
	exitOnError(openWindow())
}

func openWindow() error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store, values := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	engine := newAudio(logger)
	defer engine.Close()

	game := dino.New(
		dino.WithConfig(cfg),
		dino.WithStore(values),
		dino.WithLogger(logger),
	)

	opts := []window.Option{
		window.WithAudio(engine),
		window.WithLogger(logger),
		window.WithPlayer(playerName()),
		window.WithScale(flagScale),
	}
	if store != nil {
		opts = append(opts, window.WithScoreSaver(store))
	}

	return window.New(game, opts...).Run(core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	})
}
