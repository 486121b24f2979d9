package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	flagPlayer2    string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a pong match in the terminal.

Controls (one keyboard player):
  W/Up       - Paddle up
  S/Down     - Paddle down

Controls (two keyboard players):
  W/S        - Player 1
  Up/Down    - Player 2

  Mouse wheel - Steers a player configured as "wheel"
  Space/Enter - Start the next rally after a goal
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Difficulty options (CPU opponent):
  easy   - Start at lowest skill, improves over the match
  normal - Start at 30% skill, improves over the match
  hard   - Start at 70% skill, improves over the match
  fixed  - No progression, stays at config's initial level

Examples:
  pong play
  pong play --p2 keys
  pong play --difficulty hard
  pong play --config ./my-pong.yaml --log-file ~/.pong/pong.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer2, "p2", "", "Player 2 control: keys, wheel or cpu")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagPlayer2 != "" {
		cfg.Controls.Player2 = flagPlayer2
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size
	defaults := core.DefaultConfig()
	width, height := defaults.ScreenW, defaults.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting match",
		"player1", cfg.Controls.Player1,
		"player2", cfg.Controls.Player2,
		"field", fmt.Sprintf("%dx%d", cfg.Field.Width, cfg.Field.Height),
		"tick_rate", cfg.TickRate)

	err = tui.Run(tui.Options{
		Session: tui.SessionOptions{
			Config: cfg,
			Logger: logger,
		},
		ScreenW: width,
		ScreenH: height,
	})
	if err != nil {
		return fmt.Errorf("run match: %w", err)
	}
	return nil
}
