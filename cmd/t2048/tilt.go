package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagBoard    string
	flagDirs     string
	flagScore    int
	flagMaxPiece int
)

var tiltCmd = &cobra.Command{
	Use:   "tilt",
	Short: "Apply tilts to a board and print each result",
	Long: `Build a board from --board, tilt it toward each side in --dir and
print the board after every tilt. No tiles are spawned.

Rows are separated by '/', north row first; cells by ','. 0 is empty.
Sides: north|up|n, east|right|e, south|down|s, west|left|w.

Examples:
  t2048 tilt --board "2,2,0,0/0,0,0,0/0,0,0,0/0,0,0,0" --dir west
  t2048 tilt --board "2,0/2,4" --dir north,west --max-piece 8`,
	Args: cobra.NoArgs,
	RunE: runTilt,
}

func init() {
	tiltCmd.Flags().StringVar(&flagBoard, "board", "", "Board rows, north first, e.g. \"2,2/0,0\"")
	tiltCmd.Flags().StringVar(&flagDirs, "dir", "", "Comma separated sides to tilt toward")
	tiltCmd.Flags().IntVar(&flagScore, "score", 0, "Starting score")
	tiltCmd.Flags().IntVar(&flagMaxPiece, "max-piece", t2048.MaxPiece, "Tile that ends the game, 0 for none")
	_ = tiltCmd.MarkFlagRequired("board")
}

func runTilt(cmd *cobra.Command, _ []string) error {
	raw, err := parseBoard(flagBoard)
	if err != nil {
		return err
	}
	sides, err := parseSides(flagDirs)
	if err != nil {
		return err
	}

	m, err := t2048.NewModelFromValues(raw, flagScore, 0, false)
	if err != nil {
		return err
	}
	m.SetMaxPiece(flagMaxPiece)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, m)

	for _, side := range sides {
		if m.GameOver() {
			logger.Info("game over, remaining tilts skipped")
			break
		}
		changed := m.Tilt(side)
		fmt.Fprintf(out, "tilt %s (changed: %t)", side, changed)
		fmt.Fprint(out, m)
	}
	return nil
}

// parseBoard reads "a,b/c,d" into rows of values.
func parseBoard(s string) ([][]int, error) {
	var raw [][]int
	for i, line := range strings.Split(strings.TrimSpace(s), "/") {
		var row []int
		for _, cell := range strings.Split(line, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("board row %d: %w", i, err)
			}
			row = append(row, v)
		}
		raw = append(raw, row)
	}
	return raw, nil
}

// parseSides reads a comma separated list of sides. Empty input yields none.
func parseSides(s string) ([]t2048.Side, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var sides []t2048.Side
	for _, name := range strings.Split(s, ",") {
		side, err := t2048.ParseSide(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		sides = append(sides, side)
	}
	return sides, nil
}
