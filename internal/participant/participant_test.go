package participant

import (
	"testing"

	"github.com/dshills/collabedit/internal/position"
)

func TestTableAddGetRemove(t *testing.T) {
	tbl := NewTable()
	tbl.Add("alice")
	p, ok := tbl.Get("alice")
	if !ok || p.Username != "alice" {
		t.Fatalf("Get(alice) = %v, %v", p, ok)
	}
	tbl.Remove("alice")
	if _, ok := tbl.Get("alice"); ok {
		t.Error("Get(alice) after Remove: want not found")
	}
}

func TestSelectionRange(t *testing.T) {
	p := NewParticipant("alice")
	if _, ok := p.SelectionRange(); ok {
		t.Error("SelectionRange with no anchor: want ok=false")
	}
	anchor := position.New(5, 0)
	p.Anchor = &anchor
	p.Caret = position.New(2, 0)
	rng, ok := p.SelectionRange()
	if !ok {
		t.Fatal("SelectionRange: want ok=true")
	}
	if rng.Top != position.New(2, 0) || rng.Bot != position.New(5, 0) {
		t.Errorf("SelectionRange = %s, want normalized (2,0)-(5,0)", rng)
	}
}

func TestRewriteUpdatesCaretAndAnchor(t *testing.T) {
	p := NewParticipant("alice")
	p.Caret = position.New(5, 0)
	anchor := position.New(8, 0)
	p.Anchor = &anchor

	p.Rewrite(func(pos position.Position) position.Position {
		return position.RewriteOnInsert(position.New(0, 0), position.New(2, 0), pos)
	})

	if p.Caret != position.New(7, 0) {
		t.Errorf("Caret after rewrite = %s, want (7,0)", p.Caret)
	}
	if p.Anchor == nil || *p.Anchor != position.New(10, 0) {
		t.Errorf("Anchor after rewrite = %v, want (10,0)", p.Anchor)
	}
}

func TestEachVisitsEveryParticipant(t *testing.T) {
	tbl := NewTable()
	tbl.Add("alice")
	tbl.Add("bob")
	count := 0
	tbl.Each(func(p *Participant) { count++ })
	if count != 2 {
		t.Errorf("Each visited %d participants, want 2", count)
	}
}
