package engine

import (
	"github.com/dshills/collabedit/internal/history"
	"github.com/dshills/collabedit/internal/participant"
	"github.com/dshills/collabedit/internal/position"
)

// Snapshot is a read-only view of engine state for the renderer: the
// current lines, every connected participant's caret and selection,
// and the lines touched since the previous Snapshot call (the
// supplemented change overlay, SPEC_FULL §12).
type Snapshot struct {
	Lines         []string
	Carets        map[string]position.Position
	Selections    map[string]position.Range
	ChangeOverlay []uint32
}

// Snapshot captures the engine's current state for rendering. It drains
// the dirty-line set, so consecutive calls report only newly touched
// lines.
func (e *Engine) Snapshot() Snapshot {
	e.actionMu.Lock()
	defer e.actionMu.Unlock()

	carets := make(map[string]position.Position)
	selections := make(map[string]position.Range)
	e.participants.Each(func(p *participant.Participant) {
		carets[p.Username] = p.Caret
		if rng, ok := p.SelectionRange(); ok {
			selections[p.Username] = rng
		}
	})

	return Snapshot{
		Lines:         e.doc.Lines(),
		Carets:        carets,
		Selections:    selections,
		ChangeOverlay: e.drainDirty(),
	}
}

// Reconcile computes the session-end artifacts (spec §4.5): the
// reconciled history log (positions expressed relative to the document
// as it stood when the session opened) and the per-line blame vector
// bootstrapped to the session owner.
func (e *Engine) Reconcile() (reconciledLog []*history.Frame, blame []string) {
	e.actionMu.Lock()
	log := make([]*history.Frame, len(e.log))
	copy(log, e.log)
	final := e.doc.Lines()
	e.actionMu.Unlock()

	reconciledLog = history.Reconcile(log)

	original, err := history.Original(final, log)
	originalLineCount := len(final)
	if err == nil {
		originalLineCount = len(original)
	}
	blame = history.ComputeBlame(e.owner, originalLineCount, reconciledLog)
	return reconciledLog, blame
}
