package history

import (
	"reflect"
	"testing"

	"github.com/dshills/collabedit/internal/position"
)

// This scenario simulates two participants editing "hello world"
// without a live engine: alice inserts "X" at the document start, then
// bob cuts "hello" (now shifted one column right by alice's insert).
// The raw log below records positions exactly as they were valid
// against the live document at the moment each frame was applied —
// which is what Engine.Log returns.
func rawScenario() []*Frame {
	return []*Frame{
		{Kind: InsertFrame, Top: position.New(0, 0), Bot: position.New(1, 0), Author: "alice"},
		{Kind: CutFrame, Top: position.New(1, 0), Bot: position.New(6, 0), Text: "hello", Author: "bob"},
	}
}

func TestReconcileExpressesSessionStartCoordinates(t *testing.T) {
	reconciled := Reconcile(rawScenario())
	if len(reconciled) != 2 {
		t.Fatalf("len(reconciled) = %d, want 2", len(reconciled))
	}

	insert := reconciled[0]
	if insert.Top != position.New(0, 0) || insert.Bot != position.New(1, 0) {
		t.Errorf("insert frame untouched: got top=%s bot=%s", insert.Top, insert.Bot)
	}

	cut := reconciled[1]
	if cut.Top != position.New(0, 0) || cut.Bot != position.New(5, 0) {
		t.Errorf("cut frame reconciled to original coordinates: got top=%s bot=%s, want (0,0)-(5,0)", cut.Top, cut.Bot)
	}

	// The raw log must be untouched by Reconcile.
	raw := rawScenario()
	live := rawScenario()
	_ = Reconcile(live)
	if !reflect.DeepEqual(raw, live) {
		t.Error("Reconcile mutated its input log")
	}
}

func TestComputeBlameAssignsLastEditor(t *testing.T) {
	reconciled := Reconcile(rawScenario())
	blame := ComputeBlame("host", 1, reconciled)
	if len(blame) != 1 || blame[0] != "bob" {
		t.Errorf("blame = %v, want [\"bob\"]", blame)
	}
}

func TestOriginalReconstructsPreSessionDocument(t *testing.T) {
	final := []string{"X world"}
	original, err := Original(final, rawScenario())
	if err != nil {
		t.Fatalf("Original: %v", err)
	}
	if len(original) != 1 || original[0] != "hello world" {
		t.Errorf("Original = %v, want [\"hello world\"]", original)
	}
}

func TestStateAtIntermediateIndex(t *testing.T) {
	final := []string{"X world"}
	mid, err := StateAt(final, rawScenario(), 0)
	if err != nil {
		t.Fatalf("StateAt: %v", err)
	}
	if len(mid) != 1 || mid[0] != "Xhello world" {
		t.Errorf("StateAt(idx=0) = %v, want [\"Xhello world\"]", mid)
	}
}

func TestMultiParticipantCrossLineReconcile(t *testing.T) {
	// Original: two lines. Alice inserts a newline splitting line 0,
	// then bob cuts across the new line boundary.
	raw := []*Frame{
		{Kind: InsertFrame, Top: position.New(5, 0), Bot: position.New(0, 1), Author: "alice"},
		{Kind: CutFrame, Top: position.New(0, 1), Bot: position.New(2, 1), Text: "wo", Author: "bob"},
	}
	reconciled := Reconcile(raw)
	cut := reconciled[1]
	// Undo alice's insert (a line-split at (5,0)) on bob's (0,1)-(2,1):
	// both endpoints sit on the line alice's insert created, so they
	// rewrite back onto line 0 at columns 5 and 7.
	if cut.Top != position.New(5, 0) || cut.Bot != position.New(7, 0) {
		t.Errorf("cut reconciled = %s-%s, want (5,0)-(7,0)", cut.Top, cut.Bot)
	}
}
