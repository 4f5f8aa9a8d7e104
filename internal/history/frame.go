package history

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/collabedit/internal/position"
	"github.com/dshills/collabedit/internal/protocol"
)

// FrameKind tags what a Frame records: text removed or text inserted.
type FrameKind uint8

const (
	CutFrame FrameKind = iota
	InsertFrame
)

func (k FrameKind) String() string {
	if k == CutFrame {
		return "cut"
	}
	return "insert"
}

// Frame is one entry in the session-wide history log (spec §3, §4.5):
// a span of the document that was either cut or inserted, by whom, and
// (for a cut) the text that was removed so it can be replayed back in.
// This is the tagged-variant replacement for the teacher's generic
// (undo_fn, kwargs) tuple (spec §9).
type Frame struct {
	Kind   FrameKind
	Top    position.Position
	Bot    position.Position
	Text   string // captured removed text; empty for InsertFrame
	Author string
}

// Encode renders f as one persisted log line: "op top_col top_line
// bot_col bot_line payload author" (spec §6).
func (f *Frame) Encode() string {
	fields := []string{
		f.Kind.String(),
		strconv.FormatUint(uint64(f.Top.Col), 10),
		strconv.FormatUint(uint64(f.Top.Line), 10),
		strconv.FormatUint(uint64(f.Bot.Col), 10),
		strconv.FormatUint(uint64(f.Bot.Line), 10),
		protocol.Escape(f.Text),
		protocol.Escape(f.Author),
	}
	return strings.Join(fields, " ")
}

// DecodeFrame parses one persisted log line produced by Encode.
func DecodeFrame(line string) (*Frame, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 7 {
		return nil, fmt.Errorf("history: malformed log line %q", line)
	}
	var kind FrameKind
	switch fields[0] {
	case "cut":
		kind = CutFrame
	case "insert":
		kind = InsertFrame
	default:
		return nil, fmt.Errorf("history: unknown frame kind %q", fields[0])
	}
	topCol, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return nil, err
	}
	topLine, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return nil, err
	}
	botCol, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return nil, err
	}
	botLine, err := strconv.ParseUint(fields[4], 10, 32)
	if err != nil {
		return nil, err
	}
	return &Frame{
		Kind:   kind,
		Top:    position.New(uint32(topCol), uint32(topLine)),
		Bot:    position.New(uint32(botCol), uint32(botLine)),
		Text:   protocol.Unescape(fields[5]),
		Author: protocol.Unescape(fields[6]),
	}, nil
}

// Clone returns a deep copy, used whenever reconciliation needs to
// mutate a frame's positions without disturbing the live log.
func (f *Frame) Clone() *Frame {
	cp := *f
	return &cp
}
