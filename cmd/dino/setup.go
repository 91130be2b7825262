package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

// addGameFlags registers the flags that shape the simulation.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger builds the process logger. Fullscreen frontends log to the
// --log-file so output does not tear the display; the returned func closes it.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closer := func() {}
	if toFile {
		if flagLogFile == "" {
			out = io.Discard
		} else {
			path, err := expandHome(flagLogFile)
			if err != nil {
				return nil, nil, err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, nil, fmt.Errorf("cannot open log file: %w", err)
			}
			out = f
			closer = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "dino",
		Level:           level,
	})
	return logger, closer, nil
}

// loadGameConfig reads --config and applies --difficulty.
func loadGameConfig() (config.DinoConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DinoConfig{}, err
	}
	cfg, err := config.LoadDino(flagConfig)
	if err != nil {
		return config.DinoConfig{}, err
	}
	config.ApplyDinoPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.DinoConfig{}, err
	}
	return cfg, nil
}

// openStore opens the scores database. A failure is logged and the game
// falls back to an in-memory high score.
func openStore(logger *log.Logger) (*storage.Store, dino.ValueStore) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, high score kept in memory", "error", err)
		return nil, storage.NewMemory()
	}
	return store, store
}

// playerName returns the local user name saved with each run.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
