package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/towerflap/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after applying the config file and flags.
With --defaults, print the built-in defaults instead.

Config search order:
  --config path, ~/.towerflap/config.yaml, ./configs/towerflap.yaml,
  then the built-in defaults.

Examples:
  towerflap config
  towerflap config --defaults > ~/.towerflap/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
