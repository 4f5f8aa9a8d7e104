package history

import (
	"github.com/dshills/collabedit/internal/editop"
	"github.com/dshills/collabedit/internal/position"
)

// Record is one composite undo entry for a single participant (spec
// §4.3, §4.4): the caret/anchor snapshot taken before the edit, plus
// the up-to-two frames the edit produced (a cut of the prior selection,
// an insert of new text). Both frame pointers are the very same
// pointers appended to the engine's session-wide HistoryLog, so
// rewriting one rewrites the other — there is exactly one Frame value
// per recorded effect, referenced from two places.
type Record struct {
	Caret   position.Position
	Anchor  *position.Position
	Command editop.Command
	Cut     *Frame
	Insert  *Frame
}

// RedoRecord is a pending redo entry. Redo does not replay a stored
// inverse operation directly; it re-runs the original Command through
// the same forward-edit template that produced Record, so the Record
// it pushes back onto the undo stack is a bookkeeping equivalent of the
// one just undone rather than the identical pointer (spec §4.4).
type RedoRecord struct {
	Command editop.Command
}

// Stacks holds one participant's undo and redo history.
type Stacks struct {
	Undo []*Record
	Redo []RedoRecord
}

// PushUndo records a new forward edit. Per spec §4.4 a forward edit
// clears only the acting participant's own redo stack; callers decide
// whether to call ClearRedo based on whether this push originated from
// a fresh edit or from replaying a redo.
func (s *Stacks) PushUndo(r *Record) {
	s.Undo = append(s.Undo, r)
}

// PopUndo removes and returns the most recent undo record.
func (s *Stacks) PopUndo() (*Record, bool) {
	if len(s.Undo) == 0 {
		return nil, false
	}
	r := s.Undo[len(s.Undo)-1]
	s.Undo = s.Undo[:len(s.Undo)-1]
	return r, true
}

// PushRedo records an entry consumed by a later redo.
func (s *Stacks) PushRedo(r RedoRecord) {
	s.Redo = append(s.Redo, r)
}

// PopRedo removes and returns the most recent redo record.
func (s *Stacks) PopRedo() (RedoRecord, bool) {
	if len(s.Redo) == 0 {
		return RedoRecord{}, false
	}
	r := s.Redo[len(s.Redo)-1]
	s.Redo = s.Redo[:len(s.Redo)-1]
	return r, true
}

// ClearRedo discards all pending redo entries.
func (s *Stacks) ClearRedo() {
	s.Redo = nil
}

// Frames returns the non-nil frames the record carries, in application
// order (cut before insert), for rewriting or logging.
func (r *Record) Frames() []*Frame {
	var out []*Frame
	if r.Cut != nil {
		out = append(out, r.Cut)
	}
	if r.Insert != nil {
		out = append(out, r.Insert)
	}
	return out
}
