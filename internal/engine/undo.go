package engine

import (
	"github.com/dshills/collabedit/internal/history"
	"github.com/dshills/collabedit/internal/position"
)

// Undo reverses a participant's most recent forward edit (spec §4.4).
// The reversal is itself applied as ordinary document mutations —
// reinserting what was cut, cutting what was inserted — producing new
// frames appended to the session log, and every participant's stored
// positions are rewritten exactly as for any other edit. The acting
// participant's caret and selection anchor are then restored to the
// snapshot taken before the original edit, so a later Redo resumes from
// the same state the original edit started from.
func (e *Engine) Undo(username string) error {
	e.actionMu.Lock()
	defer e.actionMu.Unlock()

	p, ok := e.participants.Get(username)
	if !ok {
		return ErrUnknownAuthor
	}
	rec, ok := p.Stacks.PopUndo()
	if !ok {
		return ErrNothingToUndo
	}

	// Undo the insert half first, then the cut half, the reverse of the
	// order forwardEdit applied them in.
	if rec.Insert != nil {
		top, bot := rec.Insert.Top, rec.Insert.Bot
		if err := e.doc.Cut(top, bot); err != nil {
			return err
		}
		frame := &history.Frame{Kind: history.CutFrame, Top: top, Bot: bot, Author: username}
		e.rewriteAll(func(pos position.Position) position.Position {
			return position.RewriteOnCut(top, bot, pos)
		})
		e.markDirty(top, bot)
		e.appendLog(frame)
	}
	if rec.Cut != nil {
		top := rec.Cut.Top
		bot, err := e.doc.Insert(rec.Cut.Text, top)
		if err != nil {
			return err
		}
		frame := &history.Frame{Kind: history.InsertFrame, Top: top, Bot: bot, Author: username}
		e.rewriteAll(func(pos position.Position) position.Position {
			return position.RewriteOnInsert(top, bot, pos)
		})
		e.markDirty(top, bot)
		e.appendLog(frame)
	}

	p.Caret = rec.Caret
	p.Anchor = rec.Anchor

	p.Stacks.PushRedo(history.RedoRecord{Command: rec.Command})
	return nil
}

// Redo replays the most recently undone edit by re-running it through
// the same forward-edit template that produced it (spec §4.4). The new
// undo record this pushes is a bookkeeping equivalent of the one Undo
// removed, not the same pointer.
func (e *Engine) Redo(username string) error {
	e.actionMu.Lock()
	defer e.actionMu.Unlock()

	p, ok := e.participants.Get(username)
	if !ok {
		return ErrUnknownAuthor
	}
	rr, ok := p.Stacks.PopRedo()
	if !ok {
		return ErrNothingToRedo
	}
	return e.forwardEditLocked(username, rr.Command, true)
}
