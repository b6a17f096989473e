package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakeboy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration snakeboy would play with, as YAML, after the
search order has been applied:

  --config path -> ~/.snakeboy/config.yaml -> ./configs/snakeboy.yaml -> built-in

Redirect the output to a file to start a custom config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(data))
	return nil
}
