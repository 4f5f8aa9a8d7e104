package export

import (
	"fmt"
	"strings"

	"github.com/dshills/collabedit/internal/renderer"
)

// escapeRTF escapes the characters RTF treats specially in plain text
// runs: backslash, and the group delimiters.
func escapeRTF(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`)
	return r.Replace(s)
}

// ToRTF renders view as an RTF document whose color table assigns one
// entry per author, so blamed text carries its author's color through
// \cfN control words.
func ToRTF(view renderer.View) string {
	authors := make([]string, 0, len(view.Colors))
	index := make(map[string]int, len(view.Colors))
	for user := range view.Colors {
		index[user] = len(authors) + 1 // \cf0 is the default color
		authors = append(authors, user)
	}

	var b strings.Builder
	b.WriteString(`{\rtf1\ansi\deff0`)
	b.WriteString(`{\colortbl;`)
	for _, user := range authors {
		c := view.Colors[user]
		fmt.Fprintf(&b, `\red%d\green%d\blue%d;`, c.R, c.G, c.B)
	}
	b.WriteString("}\n")

	for _, line := range view.Lines {
		current := -1
		for _, cell := range line.Cells {
			if cell.Empty() {
				continue
			}
			cf := 0
			if idx, ok := index[cell.BlameAuthor]; ok {
				cf = idx
			}
			if cf != current {
				fmt.Fprintf(&b, `\cf%d `, cf)
				current = cf
			}
			b.WriteString(escapeRTF(cell.Text))
		}
		b.WriteString(`\par` + "\n")
	}
	b.WriteString("}\n")
	return b.String()
}
