package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/game"
	"github.com/vovakirdan/tui-pong/internal/platform/keyrepeat"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play pong in the current terminal",
	Long: `Start the game in the current terminal.

While the game runs the keyboard auto-repeat profile is tuned for smooth
paddle movement; your original settings are restored on exit.`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pong"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if termenv.ColorProfile() == termenv.Ascii {
		fmt.Fprintln(os.Stderr, "Error: your terminal does not support color")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Tune the keyboard repeat profile; the restorer is the single handle
	// that puts the user's settings back on every exit path.
	var tuner keyrepeat.Tuner = keyrepeat.Noop{}
	if cfg.Keyboard.Tune {
		tuner = keyrepeat.XSet{}
	}
	restorer, krErr := keyrepeat.Acquire(tuner, keyrepeat.Profile{
		Delay: cfg.Keyboard.RepeatDelay,
		Rate:  cfg.Keyboard.RepeatRate,
	})
	if krErr != nil {
		logger.Warn("could not tune keyboard repeat", "error", krErr)
	}
	defer restorer.Restore() //nolint:errcheck // Best-effort restore

	eng := game.New(width, height, game.Options{
		PaddleWidth:  cfg.Paddle.Width,
		BallInterval: time.Duration(cfg.Timing.BallIntervalMs) * time.Millisecond,
		AIInterval:   time.Duration(cfg.Timing.AIIntervalMs) * time.Millisecond,
	})

	if runErr := tui.Run(eng, width, height); runErr != nil {
		// os.Exit skips the deferred restore.
		restorer.Restore() //nolint:errcheck // Best-effort restore
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
