package main

import (
	"bufio"
	"io"

	"github.com/dshills/collabedit/internal/editop"
)

// readResult is one decoded keystroke: either an applicable Command,
// a quit request (Ctrl-C or EOF), or neither (a bare/unrecognized
// escape sequence to be silently dropped).
type readResult struct {
	cmd        editop.Command
	applicable bool
	quit       bool
}

// readCommand decodes one keystroke from r. It understands plain
// runes, Backspace, Enter, Ctrl-Z/Ctrl-Y for undo/redo, and the ANSI
// escape sequences a terminal in raw mode delivers for the arrow keys:
// three bytes ("\x1b[A") plain, six bytes ("\x1b[1;2A") shifted.
func readCommand(r *bufio.Reader) (readResult, error) {
	b, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return readResult{quit: true}, nil
		}
		return readResult{}, err
	}

	switch b {
	case 0x03: // Ctrl-C
		return readResult{quit: true}, nil
	case 0x1a: // Ctrl-Z
		return readResult{cmd: editop.Command{Kind: editop.Undo}, applicable: true}, nil
	case 0x19: // Ctrl-Y
		return readResult{cmd: editop.Command{Kind: editop.Redo}, applicable: true}, nil
	case 0x0d, 0x0a:
		return readResult{cmd: editop.Command{Kind: editop.Newline}, applicable: true}, nil
	case 0x7f, 0x08:
		return readResult{cmd: editop.Command{Kind: editop.Backspace}, applicable: true}, nil
	case 0x1b:
		return readEscapeSequence(r)
	}

	if b < 0x80 {
		return readResult{cmd: editop.Command{Kind: editop.WriteChar, Char: rune(b)}, applicable: true}, nil
	}
	// Multi-byte UTF-8 rune: put the lead byte back and re-read it as a
	// full rune from the buffered reader.
	if err := r.UnreadByte(); err != nil {
		return readResult{}, err
	}
	r2, _, err := r.ReadRune()
	if err != nil {
		return readResult{}, err
	}
	return readResult{cmd: editop.Command{Kind: editop.WriteChar, Char: r2}, applicable: true}, nil
}

func readEscapeSequence(r *bufio.Reader) (readResult, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return readResult{}, err
	}
	if b1 != '[' {
		return readResult{}, nil // bare ESC: drop
	}
	b2, err := r.ReadByte()
	if err != nil {
		return readResult{}, err
	}
	shifted := false
	dirByte := b2
	if b2 == '1' {
		// "\x1b[1;2A" form: shifted arrow keys.
		if _, err := r.Discard(2); err != nil { // ";2"
			return readResult{}, err
		}
		dirByte, err = r.ReadByte()
		if err != nil {
			return readResult{}, err
		}
		shifted = true
	}

	var dir editop.Direction
	switch dirByte {
	case 'A':
		dir = editop.Up
	case 'B':
		dir = editop.Down
	case 'C':
		dir = editop.Right
	case 'D':
		dir = editop.Left
	default:
		return readResult{}, nil // unrecognized sequence: drop
	}
	if shifted {
		return readResult{cmd: editop.Command{Kind: editop.ShiftedMove, Dir: dir}, applicable: true}, nil
	}
	return readResult{cmd: editop.Command{Kind: editop.Move, Dir: dir}, applicable: true}, nil
}
