package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML T2048Config
	if err := yaml.Unmarshal(GetDefaultYAML("2048"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultT2048Config() {
		t.Errorf("embedded default = %+v\nhardcoded = %+v", fromYAML, DefaultT2048Config())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
}

func TestLoadT2048CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  size: 5\n  max_piece: 4096\nspawn:\n  spawn4_prob: 0.3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048() failed: %v", err)
	}
	if cfg.Board.Size != 5 || cfg.Board.MaxPiece != 4096 {
		t.Errorf("board = %+v, want size 5, max 4096", cfg.Board)
	}
	if cfg.Spawn.Spawn4Prob != 0.3 {
		t.Errorf("spawn4_prob = %v, want 0.3", cfg.Spawn.Spawn4Prob)
	}
	// Unset fields keep defaults.
	if cfg.Board.StartTiles != 2 {
		t.Errorf("start_tiles = %d, want default 2", cfg.Board.StartTiles)
	}
}

func TestLoadT2048CustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadT2048(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadT2048(bad); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  size: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadT2048(invalid); err == nil || !strings.Contains(err.Error(), "board size") {
		t.Errorf("invalid size: err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*T2048Config)
		ok     bool
	}{
		{"default", func(*T2048Config) {}, true},
		{"no max piece", func(c *T2048Config) { c.Board.MaxPiece = 0 }, true},
		{"size too small", func(c *T2048Config) { c.Board.Size = 1 }, false},
		{"size too large", func(c *T2048Config) { c.Board.Size = 17 }, false},
		{"max piece not power of two", func(c *T2048Config) { c.Board.MaxPiece = 1000 }, false},
		{"max piece of two", func(c *T2048Config) { c.Board.MaxPiece = 2 }, false},
		{"too many start tiles", func(c *T2048Config) { c.Board.StartTiles = 17 }, false},
		{"negative probability", func(c *T2048Config) { c.Spawn.Spawn4Prob = -0.1 }, false},
		{"unknown progression", func(c *T2048Config) { c.Difficulty.Progression.Type = "time" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyT2048Preset(t *testing.T) {
	cfg := DefaultT2048Config()
	ApplyT2048Preset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Spawn.Spawn4Prob != 0.20 {
		t.Errorf("hard preset spawn4_prob = %v", cfg.Spawn.Spawn4Prob)
	}

	cfg = DefaultT2048Config()
	ApplyT2048Preset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if ParsePreset("normal") != DifficultyNormal || ParsePreset("brutal") != "" {
		t.Error("ParsePreset mismatch")
	}
}

func TestDifficultySpawn4Prob(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{Spawn4Increase: 0.4},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.1},
		{500, 0.3},
		{1000, 0.5},
		{5000, 0.5},
	}
	for _, tc := range tests {
		got := dm.Spawn4Prob(0.1, tc.score)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Spawn4Prob(0.1, %d) = %v, want %v", tc.score, got, tc.want)
		}
	}

	dm.SetEnabled(false)
	if got := dm.Spawn4Prob(0.1, 1000); got != 0.1 {
		t.Errorf("disabled progression: Spawn4Prob = %v, want base", got)
	}

	dm.SetInitialLevel(5)
	if got := dm.Level(0); got != 1.0 {
		t.Errorf("initial level should clamp to 1.0, got %v", got)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "T2048_CONFIG=/tmp/from-file.yaml\nT2048_DB=/tmp/scores.db\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvDBPath, "/already/set.db")
	t.Setenv(EnvLogLevel, "debug")
	// godotenv.Load only fills unset variables; clear the empty one first.
	os.Unsetenv(EnvConfigPath)

	env, err := LoadEnv(envFile)
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if env.ConfigPath != "/tmp/from-file.yaml" {
		t.Errorf("ConfigPath = %q", env.ConfigPath)
	}
	if env.DBPath != "/already/set.db" {
		t.Errorf("DBPath = %q, existing variable should win", env.DBPath)
	}
	if env.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", env.LogLevel)
	}

	if _, err := LoadEnv(filepath.Join(dir, "absent.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}

	if Or("", "x") != "x" || Or("y", "x") != "y" {
		t.Error("Or mismatch")
	}
}
