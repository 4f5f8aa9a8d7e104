package position

import "fmt"

// Position is a zero-based (column, line) location in a document.
type Position struct {
	Col  uint32
	Line uint32
}

// New creates a Position from a column and line.
func New(col, line uint32) Position {
	return Position{Col: col, Line: line}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Line)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other,
// ordered lexicographically on (Line, Col).
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before reports whether p sorts strictly before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After reports whether p sorts strictly after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Min returns the lexicographically smaller of p and other.
func Min(p, other Position) Position {
	if p.Compare(other) <= 0 {
		return p
	}
	return other
}

// Max returns the lexicographically larger of p and other.
func Max(p, other Position) Position {
	if p.Compare(other) >= 0 {
		return p
	}
	return other
}

// Range is an ordered pair of positions, Top <= Bot, representing a
// half-open span [Top, Bot). A range with Top == Bot is empty.
type Range struct {
	Top Position
	Bot Position
}

// Normalize returns the range (top, bot) such that top <= bot,
// regardless of the order a and b were given in. This is the
// normalization every API that accepts two positions performs first
// (spec §3, Range).
func Normalize(a, b Position) Range {
	if a.Compare(b) <= 0 {
		return Range{Top: a, Bot: b}
	}
	return Range{Top: b, Bot: a}
}

// IsEmpty reports whether the range spans no text.
func (r Range) IsEmpty() bool {
	return r.Top.Compare(r.Bot) == 0
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s,%s)", r.Top, r.Bot)
}

// InRange reports whether top <= p <= bot in lexicographic order
// (spec §4.1). Note the range is treated as closed on both ends here —
// this is the "does p fall inside or on the boundary of this edit"
// test used by the rewrite functions, distinct from the half-open
// [Top, Bot) convention used to address document text.
func InRange(p, top, bot Position) bool {
	return !p.Before(top) && !p.After(bot)
}

// RewriteOnCut maps p across the removal of [top, bot) (spec §4.1).
//
//   - p inside [top, bot] collapses to top.
//   - p on a later line shifts up by the number of lines removed.
//   - p on the same line as bot, at or past bot's column, shifts left
//     by the number of columns removed and lands on top's line.
//   - otherwise p is undisturbed.
func RewriteOnCut(top, bot, p Position) Position {
	if InRange(p, top, bot) {
		return top
	}
	if p.Line > bot.Line {
		return Position{Col: p.Col, Line: p.Line - (bot.Line - top.Line)}
	}
	if p.Line == bot.Line && p.Col >= bot.Col {
		return Position{Col: p.Col - (bot.Col - top.Col), Line: top.Line}
	}
	return p
}

// RewriteOnInsert maps p across an insertion whose spanned range is
// [itop, ibot) (spec §4.1).
//
//   - p on itop's line, at or past itop's column, shifts by the
//     inserted extent (both column and line).
//   - p on a later line shifts down by the number of lines inserted.
//   - otherwise p is undisturbed.
//
// The tie rule uses >= on the column in both rewrites: a position
// coincident with the edit origin is shifted. This is what makes the
// editing participant's own caret advance past what it just typed.
func RewriteOnInsert(itop, ibot, p Position) Position {
	if p.Line == itop.Line && p.Col >= itop.Col {
		return Position{
			Col:  p.Col + (ibot.Col - itop.Col),
			Line: p.Line + (ibot.Line - itop.Line),
		}
	}
	if p.Line > itop.Line {
		return Position{Col: p.Col, Line: p.Line + (ibot.Line - itop.Line)}
	}
	return p
}
