package protocol

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/collabedit/internal/editop"
	"github.com/dshills/collabedit/internal/position"
)

// Opcode identifies the kind of a wire message (spec §6).
type Opcode string

// Opcodes, per the spec §6 wire protocol table.
const (
	OpConnect        Opcode = "-C"
	OpUsersUpload    Opcode = "-U"
	OpTextUpload     Opcode = "-T"
	OpMove           Opcode = "-M"
	OpShiftedMove    Opcode = "-MS"
	OpWriteChar      Opcode = "-E"
	OpNewline        Opcode = "-NL"
	OpBackspace      Opcode = "-D"
	OpPaste          Opcode = "-PASTE"
	OpCut            Opcode = "-CUT"
	OpUndo           Opcode = "-UNDO"
	OpRedo           Opcode = "-REDO"
	OpDisconnect     Opcode = "-DC"
	OpHostDisconnect Opcode = "-DCH"
	OpWriteNack      Opcode = "-WNACK"
)

// Delim is the 3-byte message terminator (spec §4.6).
var Delim = []byte{0x20, 0x0A, 0x1E}

// Errors returned while decoding a frame.
var (
	ErrMalformed     = errors.New("protocol: malformed message")
	ErrUnknownOpcode = errors.New("protocol: unknown opcode")
)

// Escape replaces literal spaces with the "/s" token escape, applied
// uniformly to every token (spec §9 Open Questions resolution). A
// literal "/" is doubled to "//" so that text already containing "/s"
// survives the round trip.
func Escape(s string) string {
	return strings.NewReplacer("/", "//", " ", "/s").Replace(s)
}

// Unescape reverses Escape.
func Unescape(s string) string {
	return strings.NewReplacer("//", "/", "/s", " ").Replace(s)
}

// Message is a decoded (or pending-encode) wire message: author,
// opcode, and opcode-specific argument tokens.
type Message struct {
	Author string
	Op     Opcode
	Args   []string
}

// Encode serializes m into delimiter-terminated wire bytes, escaping
// every token.
func (m Message) Encode() []byte {
	tokens := make([]string, 0, 2+len(m.Args))
	tokens = append(tokens, Escape(m.Author), string(m.Op))
	for _, a := range m.Args {
		tokens = append(tokens, Escape(a))
	}
	var buf bytes.Buffer
	buf.WriteString(strings.Join(tokens, " "))
	buf.Write(Delim)
	return buf.Bytes()
}

// Decode parses one delimiter-framed payload (the delimiter itself
// already stripped by Split) into a Message.
func Decode(raw []byte) (Message, error) {
	s := string(raw)
	if s == "" {
		return Message{}, ErrMalformed
	}
	tokens := strings.Split(s, " ")
	if len(tokens) < 2 {
		return Message{}, ErrMalformed
	}
	m := Message{Author: Unescape(tokens[0]), Op: Opcode(tokens[1])}
	for _, t := range tokens[2:] {
		m.Args = append(m.Args, Unescape(t))
	}
	return m, nil
}

// Split is a bufio.SplitFunc that frames on Delim rather than newlines:
// pasted text and document uploads may themselves contain literal
// newlines, so framing cannot rely on them.
func Split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.Index(data, Delim); i >= 0 {
		return i + len(Delim), data[:i], nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// NewScanner returns a bufio.Scanner framed on the protocol delimiter,
// sized generously for whole-document uploads.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	sc.Split(Split)
	return sc
}

// UserPos pairs a username with a position, used in the -U snapshot.
type UserPos struct {
	Username string
	Pos      position.Position
}

// Message constructors, one per opcode.

func NewConnect(user string) Message { return Message{Author: user, Op: OpConnect} }

func NewUsersUpload(author string, users []UserPos) Message {
	args := make([]string, 0, len(users)*3)
	for _, u := range users {
		args = append(args,
			u.Username,
			strconv.FormatUint(uint64(u.Pos.Col), 10),
			strconv.FormatUint(uint64(u.Pos.Line), 10),
		)
	}
	return Message{Author: author, Op: OpUsersUpload, Args: args}
}

func NewTextUpload(author, text string) Message {
	return Message{Author: author, Op: OpTextUpload, Args: []string{text}}
}

func NewMove(author string, dir editop.Direction) Message {
	return Message{Author: author, Op: OpMove, Args: []string{dir.String()}}
}

func NewShiftedMove(author string, dir editop.Direction) Message {
	return Message{Author: author, Op: OpShiftedMove, Args: []string{dir.String()}}
}

func NewWriteChar(author string, ch rune) Message {
	return Message{Author: author, Op: OpWriteChar, Args: []string{string(ch)}}
}

func NewNewline(author string) Message { return Message{Author: author, Op: OpNewline} }

func NewBackspace(author string) Message { return Message{Author: author, Op: OpBackspace} }

func NewPaste(author, text string) Message {
	return Message{Author: author, Op: OpPaste, Args: []string{text}}
}

func NewCut(author string) Message { return Message{Author: author, Op: OpCut} }

func NewUndo(author string) Message { return Message{Author: author, Op: OpUndo} }

func NewRedo(author string) Message { return Message{Author: author, Op: OpRedo} }

func NewDisconnect(author string) Message { return Message{Author: author, Op: OpDisconnect} }

func NewHostDisconnect(author string) Message { return Message{Author: author, Op: OpHostDisconnect} }

func NewWriteNack(author string) Message { return Message{Author: author, Op: OpWriteNack} }

// ParseUsersUpload decodes a -U message's (user col line)* triples.
func ParseUsersUpload(m Message) ([]UserPos, error) {
	if len(m.Args)%3 != 0 {
		return nil, ErrMalformed
	}
	out := make([]UserPos, 0, len(m.Args)/3)
	for i := 0; i < len(m.Args); i += 3 {
		col, err := strconv.ParseUint(m.Args[i+1], 10, 32)
		if err != nil {
			return nil, ErrMalformed
		}
		line, err := strconv.ParseUint(m.Args[i+2], 10, 32)
		if err != nil {
			return nil, ErrMalformed
		}
		out = append(out, UserPos{Username: m.Args[i], Pos: position.New(uint32(col), uint32(line))})
	}
	return out, nil
}

// Command converts an edit-bearing message into an editop.Command for
// the engine. ok is false for non-edit opcodes (connect, uploads,
// disconnects, nack) which the session layer handles directly.
func (m Message) Command() (editop.Command, bool) {
	switch m.Op {
	case OpMove:
		if len(m.Args) < 1 {
			return editop.Command{}, false
		}
		dir, ok := editop.ParseDirection(m.Args[0])
		if !ok {
			return editop.Command{}, false
		}
		return editop.Command{Kind: editop.Move, Dir: dir}, true
	case OpShiftedMove:
		if len(m.Args) < 1 {
			return editop.Command{}, false
		}
		dir, ok := editop.ParseDirection(m.Args[0])
		if !ok {
			return editop.Command{}, false
		}
		return editop.Command{Kind: editop.ShiftedMove, Dir: dir}, true
	case OpWriteChar:
		if len(m.Args) < 1 || len(m.Args[0]) == 0 {
			return editop.Command{}, false
		}
		r := []rune(m.Args[0])
		return editop.Command{Kind: editop.WriteChar, Char: r[0]}, true
	case OpNewline:
		return editop.Command{Kind: editop.Newline}, true
	case OpBackspace:
		return editop.Command{Kind: editop.Backspace}, true
	case OpPaste:
		text := ""
		if len(m.Args) > 0 {
			text = m.Args[0]
		}
		return editop.Command{Kind: editop.Paste, Text: text}, true
	case OpCut:
		return editop.Command{Kind: editop.Cut}, true
	case OpUndo:
		return editop.Command{Kind: editop.Undo}, true
	case OpRedo:
		return editop.Command{Kind: editop.Redo}, true
	default:
		return editop.Command{}, false
	}
}

// IsSelfEcho reports whether msg is the host's broadcast echo of an
// edit the named local user originated (spec §4.6, §8: "every
// self-authored echoed message is a no-op on the originator"). A
// client that applies its own edits locally before sending them must
// skip re-applying this echo when it comes back around.
func IsSelfEcho(msg Message, localUser string) bool {
	return msg.Author == localUser
}

// FromCommand builds the wire Message for a local edit command, the
// inverse of Command.
func FromCommand(author string, cmd editop.Command) Message {
	switch cmd.Kind {
	case editop.Move:
		return NewMove(author, cmd.Dir)
	case editop.ShiftedMove:
		return NewShiftedMove(author, cmd.Dir)
	case editop.WriteChar:
		return NewWriteChar(author, cmd.Char)
	case editop.Newline:
		return NewNewline(author)
	case editop.Backspace:
		return NewBackspace(author)
	case editop.Paste:
		return NewPaste(author, cmd.Text)
	case editop.Cut:
		return NewCut(author)
	case editop.Undo:
		return NewUndo(author)
	case editop.Redo:
		return NewRedo(author)
	default:
		return Message{Author: author}
	}
}
