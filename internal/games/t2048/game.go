package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeClassic  Mode = "classic"
	ModeEndless  Mode = "endless"
)

// levelClearDelay is the number of ticks the level-cleared overlay stays up.
const levelClearDelay = 120

// Game drives a Model: it spawns tiles, maps actions onto sides and keeps
// track of campaign levels.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	model      *Model
	cfg        config.T2048Config
	difficulty *config.DifficultyManager
	levelIndex int
	revision   int // OnChange notifications since Reset

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// Package-level variables for config
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the starting level (1-10). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new campaign mode 2048 game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewClassic creates a game that ends when the configured max piece appears.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a new endless mode 2048 game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

var (
	_ registry.Game      = (*Game)(nil)
	_ registry.Resizer   = (*Game)(nil)
	_ registry.Describer = (*Game)(nil)
)

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_classic", func() registry.Game {
		return NewClassic()
	})
	registry.Register("2048_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeClassic:
		return "2048_classic"
	case ModeEndless:
		return "2048_endless"
	default:
		return "2048"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeClassic:
		return "2048 (Classic)"
	case ModeEndless:
		return "2048 (Endless)"
	default:
		return "2048"
	}
}

// Model returns the underlying game model.
func (g *Game) Model() *Model {
	return g.model
}

// Reset initializes/restarts the game. The best score carries over from the
// previous round and from cfg.BestScore, whichever is higher.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.revision = 0

	g.loadConfig()

	best := cfg.BestScore
	if g.model != nil {
		best = max(best, g.model.MaxScore(), g.model.Score())
	}
	m, err := NewModelFromTiles(g.cfg.Board.Size, nil, 0, best)
	if err != nil {
		// Only reachable with a hand-built config that skipped validation.
		m = NewModel(config.DefaultT2048Config().Board.Size)
	}
	m.OnChange(func() { g.revision++ })
	g.model = m

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()

	for range g.cfg.Board.StartTiles {
		g.spawnTile()
	}
	g.revision = 0

	g.checkScreenSize()
}

// loadConfig reads the YAML config and applies the difficulty preset.
func (g *Game) loadConfig() {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	if difficultyPreset != "" {
		config.ApplyT2048Preset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
}

// loadLevel applies the max piece for the current mode and level.
func (g *Game) loadLevel() {
	switch g.mode {
	case ModeEndless:
		g.model.SetMaxPiece(0)
	case ModeClassic:
		g.model.SetMaxPiece(g.cfg.Board.MaxPiece)
	default:
		level := GetLevel(g.levelIndex)
		if level == nil {
			level = GetLevel(LevelCount() - 1)
		}
		g.model.SetMaxPiece(level.Target)
	}
}

// spawn4Prob returns the chance that the next spawned tile is a 4.
func (g *Game) spawn4Prob() float64 {
	switch g.mode {
	case ModeCampaign:
		if level := GetLevel(g.levelIndex); level != nil {
			return level.Spawn4
		}
		return g.cfg.Spawn.Spawn4Prob
	case ModeEndless:
		return g.difficulty.Spawn4Prob(g.cfg.Spawn.Spawn4Prob, g.model.Score())
	default:
		return g.cfg.Spawn.Spawn4Prob
	}
}

// spawnTile places a 2 or a 4 in a random empty cell.
func (g *Game) spawnTile() {
	empty := g.model.EmptyCells()
	if len(empty) == 0 {
		return
	}

	cell := empty[g.rng.Intn(len(empty))]

	value := 2
	if g.rng.Float64() < g.spawn4Prob() {
		value = 4
	}

	if err := g.model.AddTile(NewTile(value, cell.Col, cell.Row)); err != nil {
		panic(fmt.Sprintf("t2048: spawn on reported empty cell: %v", err))
	}
}

// Resize follows a terminal resize without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.model != nil {
		g.checkScreenSize()
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardExtent(g.model.Size())
	minW := boardW + 4
	minH := boardH + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	before := g.revision

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// A finished round cannot be paused.
	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart itself is performed by the platform.
	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if side, ok := sideFor(in); ok {
		g.processMove(side)
	}

	return core.StepResult{State: g.State(), Changed: g.revision != before}
}

// sideFor maps a directional action onto the side tiles slide toward.
func sideFor(in core.InputFrame) (Side, bool) {
	switch {
	case in.Has(core.ActionUp):
		return North, true
	case in.Has(core.ActionDown):
		return South, true
	case in.Has(core.ActionLeft):
		return West, true
	case in.Has(core.ActionRight):
		return East, true
	}
	return North, false
}

// processMove tilts the board toward side and spawns a tile if anything moved.
func (g *Game) processMove(side Side) {
	if !g.model.Tilt(side) {
		return
	}

	if g.model.GameOver() {
		g.finish()
		return
	}

	g.spawnTile()

	if g.model.GameOver() {
		g.finish()
	}
}

// finish records why the model reported game over.
func (g *Game) finish() {
	if !g.model.MaxTileReached() {
		g.gameOver = true
		return
	}

	switch g.mode {
	case ModeCampaign:
		g.levelCleared = true
		g.levelClearTicks = 0
	default:
		g.won = true
	}
}

// advanceLevel moves to the next level, keeping the board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()

	// A full board can be stuck right after its target was reached.
	if g.model.GameOver() {
		g.finish()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.model.Score()
	return core.GameState{
		Score:     score,
		BestScore: max(score, g.model.MaxScore()),
		MaxTile:   g.model.MaxTile(),
		GameOver:  g.gameOver || g.won,
		Paused:    g.paused || g.tooSmall || g.levelCleared,
	}
}
