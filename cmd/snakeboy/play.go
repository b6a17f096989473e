package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakeboy/internal/audio"
	"github.com/vovakirdan/snakeboy/internal/config"
	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/game"
	"github.com/vovakirdan/snakeboy/internal/gfx"
	"github.com/vovakirdan/snakeboy/internal/platform/tui"
)

var (
	flagMute   bool
	flagVolume int
	flagSpeed  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snakeboy",
	Long: `Start the game: menu, board and game over screens loop until you quit.

Controls:
  Arrows/WASD/HJKL - Steer
  Enter/Space      - Start
  M                - Mute
  ?                - Debug overlay
  Ctrl+S           - Save a text screenshot
  Q/Esc/Ctrl+C     - Quit

Speed options:
  slow   - 0.75x the configured tick rate
  normal - configured tick rate
  fast   - 1.5x the configured tick rate

Examples:
  snakeboy play
  snakeboy play --speed slow
  snakeboy play --seed 42 --mute
  snakeboy play --volume 3`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with audio muted")
	cmd.Flags().IntVar(&flagVolume, "volume", -1, "Master volume 0-7 (-1 = from config)")
	cmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyPlayFlags(&cfg); err != nil {
		return err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	// Check terminal size before taking over the screen
	needW := core.ScreenTilesW * cfg.Display.CellWidth
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < core.ScreenTilesH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, snakeboy needs at least %dx%d\n", w, h, needW, core.ScreenTilesH)
	}

	art, err := gfx.LoadArt(expandHome(cfg.Board.Art))
	if err != nil {
		return err
	}

	runtimeCfg := core.DefaultConfig()
	runtimeCfg.TickRate = cfg.Display.EffectiveTickRate()
	runtimeCfg.Seed = flagSeed
	if runtimeCfg.Seed == 0 {
		runtimeCfg.Seed = time.Now().UnixNano()
	}

	logger.Info("starting",
		"config", source,
		"tick_rate", runtimeCfg.TickRate,
		"speed", cfg.Display.Speed,
		"seed", runtimeCfg.Seed,
	)

	player, output := openAudio(cfg.Audio, logger)
	if output != nil {
		defer output.Close()
	}

	rt := game.New(game.Options{
		Art:    art,
		Audio:  player,
		Rand:   core.NewRandom(runtimeCfg.Seed),
		Logger: logger,
	})

	opts := tui.Options{
		Config:    runtimeCfg,
		Shades:    cfg.Display.Shades,
		CellWidth: cfg.Display.CellWidth,
		Muted:     flagMute,
		Logger:    logger,
	}
	if output != nil {
		opts.Muter = output
	}

	if err := tui.Run(rt, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	st := rt.Stats()
	logger.Info("session ended", "games", st.Games, "best", st.Best, "ticks", st.Tick)
	return nil
}

// applyPlayFlags overrides config values with command line flags.
func applyPlayFlags(cfg *config.Config) error {
	if flagFPS != 0 {
		cfg.Display.TickRate = flagFPS
	}
	if flagSpeed != "" {
		speed, err := config.ParseSpeedPreset(flagSpeed)
		if err != nil {
			return err
		}
		cfg.Display.Speed = speed
	}
	if flagVolume >= 0 {
		cfg.Audio.Volume = uint8(min(flagVolume, config.MaxVolume))
	}
	return cfg.Validate()
}

// openAudio starts the speaker. When audio is disabled or the device cannot
// be opened the game runs silent.
func openAudio(cfg config.AudioConfig, logger *log.Logger) (audio.Player, *audio.Output) {
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return audio.Silent{}, nil
	}

	tracker := audio.NewTracker(audio.DefaultSongs(), beep.SampleRate(cfg.SampleRate))
	tracker.SetVolume(cfg.Volume)

	output, err := audio.Open(tracker, cfg.BufferMs, cfg.Gain)
	if err != nil {
		logger.Warn("audio unavailable, running silent", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return audio.Silent{}, nil
	}
	return output, output
}
