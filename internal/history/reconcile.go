package history

import "github.com/dshills/collabedit/internal/position"

// Reconcile rewrites a session's raw history log so that every frame's
// positions are expressed relative to the document as it stood at the
// start of the session (spec §4.5, an Open Question the spec resolves
// explicitly). It returns a new slice; the input log is untouched.
//
// For each cut frame, in log order: undo every earlier frame's effect
// on that frame's own span by walking backward over the earlier frames
// (an earlier cut is undone by reinserting, via RewriteOnInsert; an
// earlier insert is undone by cutting it back out, via RewriteOnCut).
// Once the cut frame's span is expressed in original-document
// coordinates, propagate it forward onto every later frame via
// RewriteOnInsert, since reconciliation is defined relative to the
// frame that removed the text. Insert frames are never the pivot being
// reconciled — they are only ever rewritten when a later cut pivots
// past them.
func Reconcile(log []*Frame) []*Frame {
	out := make([]*Frame, len(log))
	for i, f := range log {
		out[i] = f.Clone()
	}

	for i, f := range out {
		if f.Kind != CutFrame {
			continue
		}

		top, bot := f.Top, f.Bot
		for j := i - 1; j >= 0; j-- {
			earlier := out[j]
			if earlier.Kind == CutFrame {
				top = position.RewriteOnInsert(earlier.Top, earlier.Bot, top)
				bot = position.RewriteOnInsert(earlier.Top, earlier.Bot, bot)
			} else {
				top = position.RewriteOnCut(earlier.Top, earlier.Bot, top)
				bot = position.RewriteOnCut(earlier.Top, earlier.Bot, bot)
			}
		}
		f.Top, f.Bot = top, bot

		for k := i + 1; k < len(out); k++ {
			later := out[k]
			later.Top = position.RewriteOnInsert(f.Top, f.Bot, later.Top)
			later.Bot = position.RewriteOnInsert(f.Top, f.Bot, later.Bot)
		}
	}

	return out
}
