package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/dshills/collabedit/internal/renderer"
)

// ToHTML renders view as a standalone HTML document, one <div> per
// line and a <span> per cell carrying the blame author's color as an
// inline style so the exported file needs no external stylesheet.
func ToHTML(view renderer.View, title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n", html.EscapeString(title))
	b.WriteString("<body><pre style=\"font-family: monospace; white-space: pre-wrap;\">\n")
	for _, line := range view.Lines {
		if len(line.Cells) == 0 {
			b.WriteString("<div>&nbsp;</div>\n")
			continue
		}
		b.WriteString("<div>")
		for _, cell := range line.Cells {
			if cell.Empty() {
				continue
			}
			style := ""
			if cell.BlameAuthor != "" {
				c := view.Colors[cell.BlameAuthor]
				style = fmt.Sprintf(" style=\"color: rgb(%d,%d,%d)\"", c.R, c.G, c.B)
			}
			fmt.Fprintf(&b, "<span%s>%s</span>", style, html.EscapeString(cell.Text))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</pre></body></html>\n")
	return b.String()
}
