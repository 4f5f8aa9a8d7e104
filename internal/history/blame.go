package history

import "github.com/dshills/collabedit/internal/position"

// ComputeBlame derives a per-line author vector by bootstrapping every
// original line to owner and then walking the reconciled log forward
// (spec §4.5): a cut frame collapses the lines it removed and assigns
// its surviving boundary line to its author; an insert frame expands
// the vector with its author's name for every line it added.
func ComputeBlame(owner string, originalLineCount int, reconciled []*Frame) []string {
	blame := make([]string, originalLineCount)
	for i := range blame {
		blame[i] = owner
	}

	for _, f := range reconciled {
		switch f.Kind {
		case CutFrame:
			blame = collapseBlame(blame, f.Top, f.Bot)
			if int(f.Top.Line) < len(blame) {
				blame[f.Top.Line] = f.Author
			}
		case InsertFrame:
			blame = expandBlame(blame, f.Top, f.Bot, f.Author)
		}
	}

	return blame
}

// collapseBlame removes the blame entries for every line a cut deleted
// entirely (the lines strictly between top and bot), leaving the
// boundary line at top.Line for the caller to reassign.
func collapseBlame(blame []string, top, bot position.Position) []string {
	if bot.Line <= top.Line {
		return blame
	}
	removed := int(bot.Line - top.Line)
	start := int(top.Line) + 1
	if start > len(blame) {
		start = len(blame)
	}
	end := start + removed
	if end > len(blame) {
		end = len(blame)
	}
	out := make([]string, 0, len(blame)-(end-start))
	out = append(out, blame[:start]...)
	out = append(out, blame[end:]...)
	return out
}

// expandBlame inserts one author-tagged entry per line an insert added
// (the lines strictly between top and bot), just after top.Line.
func expandBlame(blame []string, top, bot position.Position, author string) []string {
	added := int(bot.Line) - int(top.Line)
	if added <= 0 {
		return blame
	}
	start := int(top.Line) + 1
	if start > len(blame) {
		start = len(blame)
	}
	newLines := make([]string, added)
	for i := range newLines {
		newLines[i] = author
	}
	out := make([]string, 0, len(blame)+added)
	out = append(out, blame[:start]...)
	out = append(out, newLines...)
	out = append(out, blame[start:]...)
	return out
}
