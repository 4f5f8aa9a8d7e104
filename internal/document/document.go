package document

import (
	"errors"
	"strings"
	"sync"

	"github.com/dshills/collabedit/internal/position"
)

// Errors returned by document operations.
var (
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrRangeInvalid       = errors.New("invalid range")
)

// Document is a thread-safe, line-indexed mutable text buffer.
// All methods are safe for concurrent use.
type Document struct {
	mu    sync.RWMutex
	lines []string
}

// New creates an empty document: a single empty line.
func New() *Document {
	return &Document{lines: []string{""}}
}

// NewFromString creates a document with the given initial content,
// splitting on newlines.
func NewFromString(s string) *Document {
	return &Document{lines: splitLines(s)}
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// Lines returns a copy of the document's lines. Safe for concurrent use;
// the returned slice is not aliased to internal state.
func (d *Document) Lines() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// LineCount returns the number of lines in the document. Always >= 1.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.lines)
}

// Line returns the text of a single line (without its terminator).
// Returns "" if line is out of range.
func (d *Document) Line(line uint32) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if int(line) >= len(d.lines) {
		return ""
	}
	return d.lines[line]
}

// LineLen returns the code-point length of a line.
func (d *Document) LineLen(line uint32) uint32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if int(line) >= len(d.lines) {
		return 0
	}
	return uint32(len([]rune(d.lines[line])))
}

// Text returns the full document content, lines joined by newline.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return strings.Join(d.lines, "\n")
}

// Clamp clamps p to a valid caret position: 0 <= Line < LineCount,
// 0 <= Col <= len(line[Line]) (spec §3, Position invariant).
func (d *Document) Clamp(p position.Position) position.Position {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.clampLocked(p)
}

func (d *Document) clampLocked(p position.Position) position.Position {
	maxLine := uint32(len(d.lines) - 1)
	line := p.Line
	if line > maxLine {
		line = maxLine
	}
	maxCol := uint32(len([]rune(d.lines[line])))
	col := p.Col
	if col > maxCol {
		col = maxCol
	}
	return position.Position{Col: col, Line: line}
}

func (d *Document) validLocked(p position.Position) bool {
	if int(p.Line) >= len(d.lines) {
		return false
	}
	return int(p.Col) <= len([]rune(d.lines[p.Line]))
}

// Insert splits text on newlines and splices it into the document at at,
// per spec §4.2: the last fragment concatenates with the tail of
// lines[at.Line] starting at at.Col; the first fragment replaces that
// tail up to at.Col; intermediate fragments become new lines. Returns
// the position immediately after the inserted content.
func (d *Document) Insert(text string, at position.Position) (position.Position, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.validLocked(at) {
		return position.Position{}, ErrPositionOutOfRange
	}

	line := []rune(d.lines[at.Line])
	before := string(line[:at.Col])
	after := string(line[at.Col:])

	fragments := strings.Split(text, "\n")

	if len(fragments) == 1 {
		d.lines[at.Line] = before + fragments[0] + after
		return position.Position{Col: at.Col + uint32(len([]rune(fragments[0]))), Line: at.Line}, nil
	}

	newLines := make([]string, 0, len(d.lines)+len(fragments)-1)
	newLines = append(newLines, d.lines[:at.Line]...)
	newLines = append(newLines, before+fragments[0])
	newLines = append(newLines, fragments[1:len(fragments)-1]...)
	lastFragment := fragments[len(fragments)-1]
	newLines = append(newLines, lastFragment+after)
	newLines = append(newLines, d.lines[at.Line+1:]...)

	d.lines = newLines

	endLine := at.Line + uint32(len(fragments)-1)
	endCol := uint32(len([]rune(lastFragment)))
	return position.Position{Col: endCol, Line: endLine}, nil
}

// Cut removes the text in [top, bot). Same-line cuts splice columns;
// cross-line cuts join the head of top's line with the tail of bot's
// line and remove the lines in between (spec §4.2).
func (d *Document) Cut(top, bot position.Position) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	r := position.Normalize(top, bot)
	top, bot = r.Top, r.Bot
	if !d.validLocked(top) || !d.validLocked(bot) {
		return ErrRangeInvalid
	}

	if top.Line == bot.Line {
		line := []rune(d.lines[top.Line])
		d.lines[top.Line] = string(line[:top.Col]) + string(line[bot.Col:])
		return nil
	}

	topLine := []rune(d.lines[top.Line])
	botLine := []rune(d.lines[bot.Line])
	joined := string(topLine[:top.Col]) + string(botLine[bot.Col:])

	newLines := make([]string, 0, len(d.lines)-int(bot.Line-top.Line))
	newLines = append(newLines, d.lines[:top.Line]...)
	newLines = append(newLines, joined)
	newLines = append(newLines, d.lines[bot.Line+1:]...)
	d.lines = newLines
	return nil
}

// RangeText returns the text strictly within [top, bot), normalizing
// the pair first. Multi-line ranges are joined with "\n" (spec §4.2).
func (d *Document) RangeText(a, b position.Position) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r := position.Normalize(a, b)
	top, bot := r.Top, r.Bot
	if !d.validLocked(top) || !d.validLocked(bot) {
		return "", ErrRangeInvalid
	}

	if top.Line == bot.Line {
		line := []rune(d.lines[top.Line])
		return string(line[top.Col:bot.Col]), nil
	}

	var b2 strings.Builder
	topLine := []rune(d.lines[top.Line])
	b2.WriteString(string(topLine[top.Col:]))
	for l := top.Line + 1; l < bot.Line; l++ {
		b2.WriteByte('\n')
		b2.WriteString(d.lines[l])
	}
	b2.WriteByte('\n')
	botLine := []rune(d.lines[bot.Line])
	b2.WriteString(string(botLine[:bot.Col]))
	return b2.String(), nil
}
