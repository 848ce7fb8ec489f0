package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, func() Game { return stubGame{id: id} })
	t.Cleanup(func() {
		mu.Lock()
		delete(factories, id)
		delete(titles, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "stub_b")
	register(t, "stub_a")

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("ID() = %q, want stub_b", g.ID())
	}
	if got := Title("stub_a"); got != "Stub stub_a" {
		t.Errorf("Title() = %q", got)
	}
	if got := Title("missing"); got != "missing" {
		t.Errorf("Title(missing) = %q, want the id back", got)
	}

	list := List()
	a, b := -1, -1
	for i, info := range list {
		switch info.ID {
		case "stub_a":
			a = i
		case "stub_b":
			b = i
		}
	}
	if a < 0 || b < 0 || a > b {
		t.Errorf("List() not sorted by id: %v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() of an unknown id returned no error")
	}
	if Exists("no_such_game") {
		t.Error("Exists() = true for an unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "stub_dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
