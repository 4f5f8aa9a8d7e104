package renderer

import (
	"testing"

	"github.com/dshills/collabedit/internal/engine"
	"github.com/dshills/collabedit/internal/position"
)

func TestRenderPlacesCaretAndSelection(t *testing.T) {
	snap := engine.Snapshot{
		Lines: []string{"hello world"},
		Carets: map[string]position.Position{
			"alice": position.New(5, 0),
		},
		Selections: map[string]position.Range{
			"alice": {Top: position.New(0, 0), Bot: position.New(5, 0)},
		},
		ChangeOverlay: []uint32{0},
	}
	view := Render(snap, nil)
	if len(view.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(view.Lines))
	}
	line := view.Lines[0]
	if !line.Dirty {
		t.Error("line should be marked dirty")
	}
	if len(line.Cells[5].CaretOf) != 1 || line.Cells[5].CaretOf[0] != "alice" {
		t.Errorf("Cells[5].CaretOf = %v, want [alice]", line.Cells[5].CaretOf)
	}
	for i := 0; i < 5; i++ {
		found := false
		for _, u := range line.Cells[i].Selected {
			if u == "alice" {
				found = true
			}
		}
		if !found {
			t.Errorf("Cells[%d] not selected by alice", i)
		}
	}
	if len(line.Cells[5].Selected) != 0 {
		t.Errorf("Cells[5] (selection end, exclusive) should not be selected")
	}
}

func TestRenderBlameAppliedPerLine(t *testing.T) {
	snap := engine.Snapshot{Lines: []string{"a", "b"}}
	view := Render(snap, []string{"alice", "bob"})
	if view.Lines[0].Cells[0].BlameAuthor != "alice" {
		t.Errorf("line0 blame = %q, want alice", view.Lines[0].Cells[0].BlameAuthor)
	}
	if view.Lines[1].Cells[0].BlameAuthor != "bob" {
		t.Errorf("line1 blame = %q, want bob", view.Lines[1].Cells[0].BlameAuthor)
	}
}

func TestAuthorColorDeterministic(t *testing.T) {
	if AuthorColor("alice") != AuthorColor("alice") {
		t.Error("AuthorColor should be deterministic for the same username")
	}
	if AuthorColor("alice") == AuthorColor("bob") {
		t.Error("AuthorColor should (almost certainly) differ between distinct usernames")
	}
}

func TestDisplayWidthWideRune(t *testing.T) {
	if w := DisplayWidth("a"); w != 1 {
		t.Errorf("DisplayWidth(a) = %d, want 1", w)
	}
	if w := DisplayWidth("文"); w != 2 {
		t.Errorf("DisplayWidth(文) = %d, want 2", w)
	}
}
