package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file, .env, SNAKE_* environment
variables and command line flags are applied. The output is valid YAML and
can be saved to ~/.snake/config.yaml as a starting point.

Examples:
  snake config
  snake config --difficulty hard > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
