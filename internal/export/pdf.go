package export

import (
	"fmt"
	"strings"

	"github.com/dshills/collabedit/internal/renderer"
)

// ToPlainPDF renders view's plain text (blame colors and selection
// overlays are dropped; a PDF content stream has no concept of a live
// cursor) into a minimal single-page, single-stream PDF. It is not a
// general PDF writer: it emits exactly the objects one Helvetica text
// block needs (catalog, page tree, page, font, content stream) and a
// correct cross-reference table, nothing more.
func ToPlainPDF(view renderer.View) []byte {
	var content strings.Builder
	content.WriteString("BT /F1 10 Tf 12 TL 40 750 Td\n")
	for i, line := range view.Lines {
		text := linePlainText(line)
		if i > 0 {
			content.WriteString("T*\n")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", escapePDFText(text))
	}
	content.WriteString("ET")
	stream := content.String()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(objects)+1)
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xrefStart)

	return []byte(b.String())
}

func linePlainText(line renderer.LineView) string {
	var b strings.Builder
	for _, cell := range line.Cells {
		b.WriteString(cell.Text)
	}
	return b.String()
}

// escapePDFText escapes the characters a PDF literal string requires
// and drops anything outside the printable ASCII range this minimal
// writer supports (it carries no embedded font encoding for anything
// wider than Helvetica's WinAnsi subset).
func escapePDFText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '(' || r == ')' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r >= 32 && r < 127:
			b.WriteRune(r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
