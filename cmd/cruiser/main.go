// cruiser runs handheld console games in a desktop window.
//
// Usage:
//
//	cruiser run                 - Play in a window (requires -tags ebiten)
//	cruiser headless --frames N - Run N frames without a window
//	cruiser list                - List available games
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cruiser/internal/app"
	"cruiser/internal/config"
	"cruiser/internal/console"
	"cruiser/internal/core"
	"cruiser/internal/registry"

	// Import games to register them
	_ "cruiser/internal/games/cruiser"
	_ "cruiser/internal/games/life"
)

var (
	flags      app.Flags
	flagFrames int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "cruiser",
	Short:         "Run handheld console games on the desktop",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play in a desktop window",
	Long: `Open a window and play the configured game.

Controls (default keymap):
  W/A/S/D  - D-pad
  K/L/R    - A/B/C buttons
  F1       - Frame statistics
  F2       - Button pad overlay
  Esc      - Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession(cmd)
		if err != nil {
			return err
		}
		return runWindow(session)
	},
}

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the game without a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return app.NewHeadless(session.game, session.con, nil).Run(ctx, flagFrames)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range registry.List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", info.ID, info.Title)
		}
	},
}

func init() {
	flags.Bind(rootCmd.PersistentFlags())
	headlessCmd.Flags().IntVar(&flagFrames, "frames", 100, "frames to run (0 = until interrupted)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.SetContext(context.Background())
}

// session is a configured game bound to its console.
type session struct {
	cfg    config.Config
	game   registry.Game
	con    *console.Console
	logger *log.Logger
}

type configurable interface {
	Configure(cfg config.Config)
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := flags.Apply(&cfg, cmd.Flags()); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cruiser",
		Level:           cfg.LogLevel(),
	})

	game, err := registry.Create(cfg.Game)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(configurable); ok {
		c.Configure(cfg)
	}

	keys, err := cfg.Keymap()
	if err != nil {
		return nil, err
	}
	con := console.New(console.Options{
		Clock:         core.SystemClock{},
		FrameInterval: cfg.Timing.FrameInterval,
		Keys:          keys,
		Logger:        logger,
	})
	logger.Debug("session ready", "game", game.ID(), "scale", cfg.Window.Scale)
	return &session{cfg: cfg, game: game, con: con, logger: logger}, nil
}
