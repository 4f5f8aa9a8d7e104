package renderer

import "github.com/rivo/uniseg"

// Segments splits line into its grapheme clusters using uniseg, so
// that multi-rune clusters (combining marks, emoji ZWJ sequences) are
// never torn apart across cells.
func Segments(line string) []string {
	var out []string
	state := -1
	remaining := line
	for len(remaining) > 0 {
		var cluster string
		cluster, remaining, _, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		out = append(out, cluster)
	}
	return out
}

// DisplayWidth returns the number of terminal columns s occupies,
// accounting for wide (e.g. CJK) and zero-width (combining,
// variation-selector) graphemes.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// ColumnToCellIndex converts a rune-based document column (as used by
// position.Position) into the index of the Cell it falls within for a
// given rendered line, since a document column counts runes while the
// cell grid counts grapheme clusters.
func ColumnToCellIndex(line string, col uint32) int {
	segs := Segments(line)
	runeCount := 0
	for i, seg := range segs {
		n := len([]rune(seg))
		if uint32(runeCount+n) > col {
			return i
		}
		runeCount += n
	}
	return len(segs)
}
