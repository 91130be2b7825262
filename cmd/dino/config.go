package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dino-runner/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a run would use, after the config search
order and the difficulty preset are applied. Redirect it to a file to
start a custom config.

Examples:
  dino config > ~/.dino/configs/dino.yaml
  dino config --difficulty hard
  dino config --default`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addGameFlags(configCmd)
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	exitOnError(err)

	out, err := yaml.Marshal(cfg)
	exitOnError(err)
	fmt.Print(string(out))
}
