package registry

import (
	"testing"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

var testPattern = Pattern{
	Title:  "Test Bar",
	Kind:   KindOscillator,
	Period: 2,
	Cells:  []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
}

func TestRegisterAndGet(t *testing.T) {
	Register("test-bar", testPattern)

	if !Exists("test-bar") {
		t.Fatal("registered pattern should exist")
	}
	p, err := Get("test-bar")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Title != "Test Bar" || len(p.Cells) != 3 {
		t.Errorf("Get returned %+v", p)
	}

	var found bool
	for _, info := range List() {
		if info.ID == "test-bar" {
			found = true
			if info.Cells != 3 || info.Period != 2 || info.Kind != KindOscillator {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List should include the registered pattern")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", testPattern)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", testPattern)
}

func TestRegisterEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register without cells should panic")
		}
	}()
	Register("test-empty", Pattern{Title: "Empty"})
}

func TestGetUnknown(t *testing.T) {
	if Exists("no-such-pattern") {
		t.Error("unknown pattern should not exist")
	}
	if _, err := Get("no-such-pattern"); err == nil {
		t.Error("Get of unknown pattern should fail")
	}
}

func TestListSorted(t *testing.T) {
	Register("test-zz", testPattern)
	Register("test-aa", testPattern)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestPatternSize(t *testing.T) {
	p := Pattern{Cells: []core.Coord{{X: 1, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 1}}}
	w, h := p.Size()
	if w != 4 || h != 3 {
		t.Errorf("Size() = %dx%d, expected 4x3", w, h)
	}
}

func TestPatternStamp(t *testing.T) {
	g := life.Generate(5, 5)

	placed := testPattern.Stamp(g, core.C(2, 2))
	if placed != 3 {
		t.Errorf("Stamp placed %d cells, expected 3", placed)
	}
	if g.String() != ".....\n.....\n.###.\n.....\n....." {
		t.Errorf("unexpected grid:\n%s", g)
	}
}

func TestPatternStampClipsAtEdge(t *testing.T) {
	g := life.Generate(3, 3)

	placed := testPattern.Stamp(g, core.C(0, 0))
	if placed != 2 {
		t.Errorf("Stamp placed %d cells, expected 2", placed)
	}
}

func TestSetup(t *testing.T) {
	setup, err := Setup("")
	if err != nil || setup != nil {
		t.Errorf("Setup(\"\") = %v, %v; expected nil, nil", setup, err)
	}

	if _, err := Setup("no-such-pattern"); err == nil {
		t.Error("Setup of unknown pattern should fail")
	}

	Register("test-setup", testPattern)
	setup, err = Setup("test-setup")
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	g := life.Generate(7, 5)
	setup(g)
	if !g.Alive(2, 2) || !g.Alive(3, 2) || !g.Alive(4, 2) || g.CountLiving() != 3 {
		t.Errorf("pattern not centered:\n%s", g)
	}
}
