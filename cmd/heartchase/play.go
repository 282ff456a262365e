package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vlegaspi/heartchase/internal/audio"
	"github.com/vlegaspi/heartchase/internal/core"
	"github.com/vlegaspi/heartchase/internal/game"
	"github.com/vlegaspi/heartchase/internal/platform/tui"
	"github.com/vlegaspi/heartchase/internal/storage"
)

var flagNoSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Heart Chase",
	Long: `Start a Heart Chase session in the current terminal.

Controls:
  W/A/S/D or arrows - Move / navigate menus
  D or Right        - Confirm a menu entry
  Enter/Space       - Confirm
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower chasers
  normal - Default chase cadence
  hard   - Faster chasers

Examples:
  heartchase play
  heartchase play --difficulty easy
  heartchase play --seed 42 --no-sound
  heartchase play --config ./my-heartchase.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable all sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger := newPlayLogger()

	var sound *audio.Player
	if !flagNoSound {
		sound = audio.NewPlayer()
		if soundErr := sound.Init(); soundErr != nil {
			logger.Warn("sound unavailable", "error", soundErr)
			sound = nil
		}
	}

	runErr := tui.Run(game.New(), store, sound, logger, cfg)

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newPlayLogger logs to ~/.heartchase/heartchase.log so log lines never
// corrupt the alt screen. Falls back to a discard logger.
func newPlayLogger() *log.Logger {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard)
	}

	dir := filepath.Join(home, ".heartchase")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard)
	}

	f, err := os.OpenFile(filepath.Join(dir, "heartchase.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "heartchase",
	})
}
