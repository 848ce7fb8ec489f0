package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// scriptedGame ends after a fixed number of steps and records what it saw.
type scriptedGame struct {
	resets   []core.RuntimeConfig
	inputs   []core.InputFrame
	endAfter int
	steps    int
	resizedW int
	resizedH int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.steps = 0
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	// The host reuses its frame between ticks, so keep a copy.
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.inputs = append(g.inputs, frame)
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }

func (g *scriptedGame) State() core.GameState {
	return core.GameState{
		Score:    300,
		MaxTile:  64,
		GameOver: g.endAfter > 0 && g.steps >= g.endAfter,
	}
}

func (g *scriptedGame) Controls() string { return "keys" }

func (g *scriptedGame) Resize(w, h int) {
	g.resizedW, g.resizedH = w, h
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelSeedsBestScoreFromStore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("scripted", 500, 128); err != nil {
		t.Fatal(err)
	}

	g := &scriptedGame{}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, quietLogger())
	m.Init()

	if len(g.resets) != 1 {
		t.Fatalf("Reset called %d times, want 1", len(g.resets))
	}
	if got := g.resets[0].BestScore; got != 500 {
		t.Errorf("BestScore = %d, want 500", got)
	}
	// One row is kept for the key hints.
	if got := g.resets[0].ScreenH; got != 23 {
		t.Errorf("ScreenH = %d, want 23", got)
	}
}

func TestModelForwardsKeys(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, quietLogger())
	m.Init()

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = pressKey(t, m, runeKey("r")) // ignored while the game runs
	m = tick(t, m)

	if len(g.inputs) != 1 {
		t.Fatalf("Step called %d times, want 1", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("left arrow not forwarded")
	}
	if g.inputs[0].Has(core.ActionRestart) {
		t.Error("restart forwarded before game over")
	}

	m = tick(t, m)
	if !g.inputs[1].Empty() {
		t.Error("input frame not cleared between ticks")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{endAfter: 1}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, quietLogger())
	m.Init()

	for range 3 {
		m = tick(t, m)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 300 || scores[0].MaxTile != 64 {
		t.Errorf("saved %d/%d, want 300/64", scores[0].Score, scores[0].MaxTile)
	}

	// Restart after game over resets the game and re-arms saving.
	m = pressKey(t, m, runeKey("r"))
	m = tick(t, m)
	if len(g.resets) != 2 {
		t.Fatalf("Reset called %d times, want 2", len(g.resets))
	}
	if got := g.resets[1].BestScore; got != 300 {
		t.Errorf("BestScore on restart = %d, want 300", got)
	}
	if m.scoreSaved {
		t.Error("scoreSaved still set after restart")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, quietLogger())
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if len(g.resets) != 1 {
		t.Errorf("resize reset the game (%d resets)", len(g.resets))
	}
	if g.resizedW != 100 || g.resizedH != 39 {
		t.Errorf("Resize(%d, %d), want (100, 39)", g.resizedW, g.resizedH)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, quietLogger())

	next, cmd := m.Update(runeKey("q"))
	m = next.(Model)
	if !m.quitting || cmd == nil {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("View() not empty after quitting")
	}
}
