package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/gopxl/beep"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakeboy/internal/audio"
	"github.com/vovakirdan/snakeboy/internal/core"
)

var listenCmd = &cobra.Command{
	Use:   "listen <track>",
	Short: "Play one track of the soundtrack",
	Long: `Plays a track once through the speaker and exits. Press Ctrl+C to stop early.

Examples:
  snakeboy listen menu
  snakeboy listen gameover --volume 4`,
	Args: cobra.ExactArgs(1),
	RunE: runListen,
}

func init() {
	listenCmd.Flags().IntVar(&flagVolume, "volume", -1, "Master volume 0-7 (-1 = from config)")
}

func runListen(_ *cobra.Command, args []string) error {
	track := audio.Track(args[0])
	songs := audio.DefaultSongs()
	if _, ok := songs[track]; !ok {
		return fmt.Errorf("unknown track %q, run 'snakeboy tracks' to see available tracks", track)
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if flagVolume >= 0 {
		cfg.Audio.Volume = uint8(min(flagVolume, audio.MaxVolume))
	}

	tracker := audio.NewTracker(songs, beep.SampleRate(cfg.Audio.SampleRate))
	tracker.SetVolume(cfg.Audio.Volume)
	output, err := audio.Open(tracker, cfg.Audio.BufferMs, cfg.Audio.Gain)
	if err != nil {
		return err
	}
	defer output.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Playing %s (Ctrl+C to stop)\n", track)
	fps := flagFPS
	if fps <= 0 {
		fps = core.FrameRate
	}
	if err := tracker.Listen(ctx, track, fps); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
