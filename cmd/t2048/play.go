package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play 2048",
	Long: `Start a game of 2048. Without a mode the mode picker is shown first.

Modes:
  2048          - Campaign: ten levels with rising target tiles
  2048_classic  - Classic: reach the configured max piece (2048 by default)
  2048_endless  - Endless: play until no move is left

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Fewer 4s, progression from the lowest level
  normal - Progression starts at 30%
  hard   - More 4s, progression starts at 70%
  fixed  - No progression

Examples:
  t2048 play
  t2048 play 2048_classic
  t2048 play 2048 --level 5
  t2048 play 2048_endless --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-10)")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg := runtimeConfig()

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown mode %q, run 't2048 list' to see available modes", gameID)
		}
	} else {
		selection, updated, err := tui.RunT2048ModeSelector(cfg)
		if err != nil {
			return err
		}
		cfg = updated
		if selection == nil {
			return nil
		}
		if selection.ShowScores {
			store := openStore()
			if store != nil {
				defer store.Close()
			}
			_, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			return err
		}
		gameID = selection.GameID()
		if selection.Level > 0 {
			flagLevel = selection.Level
		}
	}

	if flagLevel != 0 {
		if flagLevel < 1 || flagLevel > t2048.LevelCount() {
			return fmt.Errorf("level %d outside 1-%d", flagLevel, t2048.LevelCount())
		}
		t2048.SetStartLevel(flagLevel)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return playGame(gameID, store, cfg)
}

// playGame creates the mode and runs it until the player quits.
func playGame(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Debug("starting game", "game", gameID, "fps", cfg.TickRate)
	if err := tui.Run(game, store, cfg, tuiLogger()); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// openStore opens the score database. Without it games still run, unsaved.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
