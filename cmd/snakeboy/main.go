// snakeboy is a handheld-style snake game played in the terminal.
//
// Usage:
//
//	snakeboy                  - Play (same as snakeboy play)
//	snakeboy play             - Play
//	snakeboy tracks           - List the chiptune tracks
//	snakeboy listen <track>   - Play a track without the game
//	snakeboy config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Override the tick rate
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Use a custom config YAML
//	--log <path>      - Log file (default: ~/.snakeboy/snakeboy.log)
//	--debug           - Log debug messages
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakeboy/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakeboy",
	Short: "Snakeboy - a pocket console snake game for your terminal",
	Long: `Snakeboy is a snake game modelled on an 8-bit handheld: a 20x18 tile
screen, four shades of green and a two channel chiptune soundtrack.

Available commands:
  play     - Play the game (default)
  tracks   - List the soundtrack
  listen   - Play one track
  config   - Show the effective configuration

Examples:
  snakeboy
  snakeboy play --speed fast --mute
  snakeboy listen menu
  snakeboy config --config ./my-snakeboy.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.snakeboy/snakeboy.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration selected by --config.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.LoadWithSource(expandHome(flagConfig))
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, source, nil
}

// openLogger creates the file logger. The returned closer must be called
// on exit.
func openLogger() (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)

	if path := expandHome(flagLogPath); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakeboy",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
