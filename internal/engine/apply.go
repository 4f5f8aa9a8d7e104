package engine

import (
	"github.com/dshills/collabedit/internal/editop"
	"github.com/dshills/collabedit/internal/history"
	"github.com/dshills/collabedit/internal/position"
)

// Apply dispatches one decoded command to the appropriate handler
// (spec §4.3). It is the single entry point both the local input loop
// and the session's message-reading goroutine use to mutate the
// engine.
func (e *Engine) Apply(username string, cmd editop.Command) error {
	switch cmd.Kind {
	case editop.Move:
		return e.Move(username, cmd.Dir, false)
	case editop.ShiftedMove:
		return e.Move(username, cmd.Dir, true)
	case editop.Undo:
		return e.Undo(username)
	case editop.Redo:
		return e.Redo(username)
	default:
		return e.forwardEdit(username, cmd, false)
	}
}

// forwardEdit is the operation-engine template shared by every
// content-mutating command and by Redo (spec §4.3, §4.4): snapshot the
// caret/anchor, cut the active selection if any, apply the command's
// own forward edit, rewrite every participant's stored positions, then
// push the composite undo record.
func (e *Engine) forwardEdit(username string, cmd editop.Command, fromRedo bool) error {
	e.actionMu.Lock()
	defer e.actionMu.Unlock()
	return e.forwardEditLocked(username, cmd, fromRedo)
}

// forwardEditLocked is forwardEdit's body, callable by Redo which must
// hold actionMu across popping the redo stack and replaying it.
func (e *Engine) forwardEditLocked(username string, cmd editop.Command, fromRedo bool) error {
	p, ok := e.participants.Get(username)
	if !ok {
		return ErrUnknownAuthor
	}

	origCaret := p.Caret
	var origAnchor *position.Position
	if p.Anchor != nil {
		a := *p.Anchor
		origAnchor = &a
	}

	selRange, hasSel := p.SelectionRange()

	switch cmd.Kind {
	case editop.Backspace:
		if !hasSel {
			if p.Caret.Col == 0 && p.Caret.Line == 0 {
				return nil // explicit no-op at document start (spec §9)
			}
			prev := e.priorPosition(p.Caret)
			selRange = position.Range{Top: prev, Bot: p.Caret}
			hasSel = true
		}
	case editop.Cut:
		if !hasSel {
			return nil
		}
	}

	var cutFrame, insFrame *history.Frame

	if hasSel {
		text, err := e.doc.RangeText(selRange.Top, selRange.Bot)
		if err != nil {
			return err
		}
		if err := e.doc.Cut(selRange.Top, selRange.Bot); err != nil {
			return err
		}
		cutFrame = &history.Frame{Kind: history.CutFrame, Top: selRange.Top, Bot: selRange.Bot, Text: text, Author: username}
		top, bot := selRange.Top, selRange.Bot
		e.rewriteAll(func(pos position.Position) position.Position {
			return position.RewriteOnCut(top, bot, pos)
		})
		e.markDirty(top, bot)
		p.ClearSelection()
	}

	var insertText string
	switch cmd.Kind {
	case editop.WriteChar:
		insertText = string(cmd.Char)
	case editop.Newline:
		insertText = "\n"
	case editop.Paste:
		insertText = cmd.Text
	}

	if insertText != "" {
		itop := p.Caret
		ibot, err := e.doc.Insert(insertText, itop)
		if err != nil {
			return err
		}
		insFrame = &history.Frame{Kind: history.InsertFrame, Top: itop, Bot: ibot, Author: username}
		e.rewriteAll(func(pos position.Position) position.Position {
			return position.RewriteOnInsert(itop, ibot, pos)
		})
		e.markDirty(itop, ibot)
	}

	if cmd.Kind == editop.Cut && cutFrame != nil && username == e.owner {
		e.clipMu.Lock()
		e.clipboard = cutFrame.Text
		e.clipMu.Unlock()
	}

	rec := &history.Record{Caret: origCaret, Anchor: origAnchor, Command: cmd, Cut: cutFrame, Insert: insFrame}
	e.appendLog(rec.Frames()...)
	p.Stacks.PushUndo(rec)
	if !fromRedo {
		p.Stacks.ClearRedo()
	}
	return nil
}
