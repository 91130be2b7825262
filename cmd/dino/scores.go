package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresReset bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores.

Examples:
  dino scores
  dino scores --limit 25
  dino scores --tui
  dino scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all runs and the stored high score")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print")
}

func runScores(_ *cobra.Command, _ []string) {
	exitOnError(scores())
}

func scores() error {
	game := dino.New()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresReset:
		return resetScores(store, game.ID())
	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, game.ID(), game.Title(), width, height)
	}

	entries, err := store.TopScores(game.ID(), flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dino play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "------", "----")
	for i, entry := range entries {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(game.ID()); err == nil {
		fmt.Println()
		fmt.Printf("%d runs, average %.0f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func resetScores(store *storage.Store, gameID string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	if err := store.DeleteKey(dino.HighScoreKey); err != nil {
		return err
	}
	fmt.Println("Scores and high score cleared.")
	return nil
}
