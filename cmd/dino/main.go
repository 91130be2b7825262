// dino is an endless runner for the terminal, the desktop and SSH.
//
// Usage:
//
//	dino play               - Play in the terminal
//	dino window             - Play in a desktop window
//	dino serve              - Start SSH server for remote play
//	dino scores             - Show high scores
//	dino config             - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.dino/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log file for the terminal and window frontends
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Runner - jump the cacti, duck the birds",
	Long: `Dino Runner is an endless runner in the spirit of the offline
browser game. Jump over cacti, duck under birds and watch the world speed
up with every hundred points.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective game configuration

Examples:
  dino play
  dino play --difficulty hard
  dino window --scale 1.5
  dino serve --ssh :2222
  dino scores --tui`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dino/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.dino/dino.log", "Log file for the play and window frontends")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// exitOnError prints err and exits with status 1.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
