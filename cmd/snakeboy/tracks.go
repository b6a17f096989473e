package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakeboy/internal/audio"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the soundtrack",
	Long:  `Shows every chiptune track with its length and speed.`,
	Args:  cobra.NoArgs,
	Run:   runTracks,
}

func runTracks(_ *cobra.Command, _ []string) {
	songs := audio.DefaultSongs()
	names := audio.TrackNames(songs)

	fmt.Println("Tracks:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		maxNameLen = max(maxNameLen, len(name))
	}

	// Print header
	fmt.Printf("  %-*s  %4s  %5s  %s\n", maxNameLen, "Name", "Rows", "Speed", "Channels")
	fmt.Printf("  %-*s  %4s  %5s  %s\n", maxNameLen, "----", "----", "-----", "--------")

	for _, name := range names {
		s := songs[name]
		fmt.Printf("  %-*s  %4d  %5d  %d\n", maxNameLen, name, s.Rows(), s.Speed, len(s.Voices))
	}

	fmt.Println()
	fmt.Println("Run 'snakeboy listen <name>' to play a track.")
}
