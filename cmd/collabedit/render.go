package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/collabedit/internal/renderer"
)

// drawFrame repaints the whole screen: clear, home cursor, one line of
// text per document line with each author's selection/caret painted in
// their AuthorColor via a 24-bit ANSI escape. It is a plain
// clear-and-redraw rather than the teacher's dirty-region diffing,
// appropriate for a line-oriented terminal session rather than a full
// tcell backend.
func drawFrame(w io.Writer, view renderer.View, statusLine string) {
	var b strings.Builder
	b.WriteString("\x1b[2J\x1b[H")
	for _, line := range view.Lines {
		writeLine(&b, view, line)
		b.WriteString("\r\n")
	}
	b.WriteString("\x1b[7m" + statusLine + "\x1b[0m\r\n")
	fmt.Fprint(w, b.String())
}

func writeLine(b *strings.Builder, view renderer.View, line renderer.LineView) {
	for _, cell := range line.Cells {
		switch {
		case len(cell.CaretOf) > 0:
			c := view.Colors[cell.CaretOf[0]]
			fmt.Fprintf(b, "\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
			b.WriteString(cellGlyph(cell))
			b.WriteString("\x1b[0m")
		case len(cell.Selected) > 0:
			c := view.Colors[cell.Selected[0]]
			fmt.Fprintf(b, "\x1b[7m\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
			b.WriteString(cellGlyph(cell))
			b.WriteString("\x1b[0m")
		case cell.BlameAuthor != "":
			c := renderer.AuthorColor(cell.BlameAuthor)
			fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
			b.WriteString(cellGlyph(cell))
			b.WriteString("\x1b[0m")
		default:
			b.WriteString(cellGlyph(cell))
		}
	}
}

func cellGlyph(cell renderer.Cell) string {
	if cell.Empty() {
		return " "
	}
	return cell.Text
}
