package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/audio"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
)

var (
	flagMute     bool
	flagDuckHold time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Space/Up/W  - Jump (also starts the game)
  Down/S      - Duck
  R/Enter     - Restart (after game over)
  M           - Mute
  ?           - Help
  Q/Ctrl+C    - Quit

Terminals report key presses but not releases, so a duck lasts for
--duck-hold after the last key repeat.

Difficulty options:
  easy   - Slower start
  normal - Default speed
  hard   - Faster start and steeper speed-up
  fixed  - No speed-up at milestones

Examples:
  dino play
  dino play --difficulty easy
  dino play --config ./my-dino.yaml
  dino play --mute --duck-hold 400ms`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	playCmd.Flags().DurationVar(&flagDuckHold, "duck-hold", tui.DefaultDuckHold, "How long a duck lasts without a key repeat")
}

func runPlay(_ *cobra.Command, _ []string) {
	exitOnError(play())
}

func play() error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

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

	opts := []tui.ModelOption{
		tui.WithAudio(engine),
		tui.WithLogger(logger),
		tui.WithPlayer(playerName()),
		tui.WithDuckHold(flagDuckHold),
	}
	if store != nil {
		opts = append(opts, tui.WithScoreSaver(store))
	}

	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, opts...)
}

// newAudio opens the speaker. Without a sound device the engine stays silent.
func newAudio(logger *log.Logger) *audio.Engine {
	engine := audio.NewEngine(logger)
	if err := engine.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	engine.SetMuted(flagMute)
	return engine
}
