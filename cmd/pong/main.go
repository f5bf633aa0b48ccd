// pong is a terminal pong game: you control the right paddle with the arrow
// keys against a simple AI opponent.
//
// Usage:
//
//	pong               - Play in the current terminal
//	pong play          - Same as above
//	pong serve         - Start an SSH server for remote play
//
// Global flags:
//
//	--config <path>    - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Play pong in your terminal",
	Long: `A terminal pong game against an AI opponent.

Controls:
  Up/Down    - Move the paddle
  Space      - Start a round / play again
  Q/Ctrl+C   - Quit

Examples:
  pong
  pong play --config ./my-pong.yaml
  pong serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
