package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/terminal"
)

// Config holds the command line settings
type Config struct {
	Debug bool
	Tick  time.Duration
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "vi-pong",
		Short: "Single player terminal pong",
		Long: `Defend the left edge with a paddle while the ball bounces off the other walls.
Every return scores a point; a miss ends the game.

Keys: j down, k up, p pause, q quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "Write debug log to "+logDir+"/"+logFileName)
	cmd.Flags().DurationVar(&cfg.Tick, "tick", constants.TickDelay, "Delay between frames")

	return cmd
}

// validate rejects settings that cannot drive the game loop
func (c Config) validate() error {
	if c.Tick <= 0 {
		return errors.Errorf("tick must be positive, got %s", c.Tick)
	}
	return nil
}

// run sets up logging and the terminal, then plays one game
func run(out io.Writer, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := terminal.CheckTTY(); err != nil {
		return err
	}

	session, err := terminal.New()
	if err != nil {
		return errors.Wrap(err, "failed to initialize terminal")
	}

	return play(session, out, cfg)
}

// play owns the session lifecycle: the terminal is released on every exit
// path before the final score is printed
func play(session *terminal.Session, out io.Writer, cfg Config) error {
	if err := session.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize terminal")
	}

	var result engine.Result
	core.Protect(session.Fini, func() {
		game := engine.NewGame(engine.Config{
			Bounds:   session,
			Keyboard: session,
			Surface:  session,
			Tick:     cfg.Tick,
		})
		result = game.Run()
	})

	slog.Info("exit", "reason", result.Reason.String(), "score", result.Score, "frames", result.Frames)
	_, err := fmt.Fprintf(out, constants.GameOverFormat, result.Score)
	return err
}
