package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnookala/flappy-claude/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config file,
difficulty preset and flags are applied. Save the output as
~/.flappy-claude/config.yaml to customize it.

Examples:
  flappy config
  flappy config --difficulty hard
  flappy config --defaults > ~/.flappy-claude/config.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(out))
}
