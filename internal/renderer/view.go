package renderer

import (
	"github.com/dshills/collabedit/internal/engine"
	"github.com/dshills/collabedit/internal/position"
)

// View is a read-only, renderer-ready picture of a document: one
// LineView per document line, plus the AuthorColor of every user with
// a caret in the snapshot, for painting carets and selections.
type View struct {
	Lines  []LineView
	Colors map[string]Color
}

// LineView is a single rendered line.
type LineView struct {
	Cells []Cell
	Dirty bool
}

// Render converts an engine Snapshot (and an optional per-line blame
// vector, which may be nil) into a View. It never mutates its inputs.
func Render(snap engine.Snapshot, blame []string) View {
	dirty := make(map[uint32]struct{}, len(snap.ChangeOverlay))
	for _, ln := range snap.ChangeOverlay {
		dirty[ln] = struct{}{}
	}

	colors := make(map[string]Color, len(snap.Carets))
	for user := range snap.Carets {
		colors[user] = AuthorColor(user)
	}

	lines := make([]LineView, len(snap.Lines))
	for i, text := range snap.Lines {
		lv := LineView{Cells: renderLine(uint32(i), text, snap), Dirty: true}
		if _, ok := dirty[uint32(i)]; !ok {
			lv.Dirty = false
		}
		if blame != nil && i < len(blame) {
			for ci := range lv.Cells {
				lv.Cells[ci].BlameAuthor = blame[i]
			}
		}
		lines[i] = lv
	}
	return View{Lines: lines, Colors: colors}
}

func renderLine(lineIdx uint32, text string, snap engine.Snapshot) []Cell {
	segs := Segments(text)
	cells := make([]Cell, len(segs))
	for i, seg := range segs {
		cells[i] = Cell{Text: seg, Width: DisplayWidth(seg)}
	}

	// A caret may rest one column past the last grapheme (end of
	// line); represent it with a synthetic trailing empty cell so it
	// still has somewhere to render.
	lineEndCell := len(cells)

	for user, caret := range snap.Carets {
		if caret.Line != lineIdx {
			continue
		}
		idx := ColumnToCellIndex(text, caret.Col)
		if idx >= len(cells) {
			idx = lineEndCell
		}
		cells = placeCaret(cells, idx, user)
	}

	for user, sel := range snap.Selections {
		markSelection(cells, text, lineIdx, sel, user)
	}

	return cells
}

func placeCaret(cells []Cell, idx int, user string) []Cell {
	if idx == len(cells) {
		cells = append(cells, Cell{})
	}
	cells[idx].CaretOf = append(cells[idx].CaretOf, user)
	return cells
}

func markSelection(cells []Cell, text string, lineIdx uint32, sel position.Range, user string) {
	if lineIdx < sel.Top.Line || lineIdx > sel.Bot.Line {
		return
	}
	startCol := uint32(0)
	if lineIdx == sel.Top.Line {
		startCol = sel.Top.Col
	}
	endCol := uint32(len([]rune(text)))
	if lineIdx == sel.Bot.Line {
		endCol = sel.Bot.Col
	}
	startIdx := ColumnToCellIndex(text, startCol)
	endIdx := ColumnToCellIndex(text, endCol)
	for i := startIdx; i < endIdx && i < len(cells); i++ {
		cells[i].Selected = append(cells[i].Selected, user)
	}
}
