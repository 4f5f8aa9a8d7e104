package engine

import (
	"github.com/dshills/collabedit/internal/editop"
	"github.com/dshills/collabedit/internal/position"
)

// Move repositions a participant's caret one step in dir. When shifted
// is true the existing selection is extended (anchoring it at the
// current caret first if none is active yet); otherwise any active
// selection is dropped. Motion never touches the document and is never
// logged or placed on an undo stack.
func (e *Engine) Move(username string, dir editop.Direction, shifted bool) error {
	e.actionMu.Lock()
	defer e.actionMu.Unlock()

	p, ok := e.participants.Get(username)
	if !ok {
		return ErrUnknownAuthor
	}

	if shifted {
		if p.Anchor == nil {
			anchor := p.Caret
			p.Anchor = &anchor
		}
		p.Caret = e.motion(p.Caret, dir)
		return nil
	}

	if sel, ok := p.SelectionRange(); ok {
		p.ClearSelection()
		p.Caret = e.doc.Clamp(e.collapseTo(sel, dir))
		return nil
	}

	p.Caret = e.motion(p.Caret, dir)
	return nil
}

// collapseTo computes the direction-biased endpoint an unshifted motion
// snaps an active selection's caret to (spec §4.3): left/up land on the
// lesser endpoint; right/down land on the greater endpoint, advanced one
// further step in the motion's own dimension.
func (e *Engine) collapseTo(sel position.Range, dir editop.Direction) position.Position {
	switch dir {
	case editop.Left, editop.Up:
		return sel.Top
	case editop.Right:
		return position.New(sel.Bot.Col+1, sel.Bot.Line)
	case editop.Down:
		return position.New(sel.Bot.Col, sel.Bot.Line+1)
	default:
		return sel.Bot
	}
}

func (e *Engine) motion(pos position.Position, dir editop.Direction) position.Position {
	switch dir {
	case editop.Left:
		if pos.Col > 0 {
			return position.New(pos.Col-1, pos.Line)
		}
		if pos.Line > 0 {
			return position.New(e.doc.LineLen(pos.Line-1), pos.Line-1)
		}
		return pos
	case editop.Right:
		lineLen := e.doc.LineLen(pos.Line)
		if pos.Col < lineLen {
			return position.New(pos.Col+1, pos.Line)
		}
		if pos.Line+1 < uint32(e.doc.LineCount()) {
			return position.New(0, pos.Line+1)
		}
		return pos
	case editop.Up:
		if pos.Line == 0 {
			return pos
		}
		return e.doc.Clamp(position.New(pos.Col, pos.Line-1))
	case editop.Down:
		if pos.Line+1 >= uint32(e.doc.LineCount()) {
			return pos
		}
		return e.doc.Clamp(position.New(pos.Col, pos.Line+1))
	default:
		return pos
	}
}
