package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML.

Config files are searched in this order:
  1. --config <path>
  2. ~/.brickbreaker/configs/brickbreaker.yaml
  3. ./configs/brickbreaker.yaml
  4. built-in defaults

The output is a complete config file and can be edited and passed back
with --config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := config.LoadBrickBreaker(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data) //nolint:errcheck // Nothing useful to do on a failed write
}
