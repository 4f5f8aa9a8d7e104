package protocol

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/dshills/collabedit/internal/editop"
	"github.com/dshills/collabedit/internal/position"
)

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	cases := []string{"", "hello", "hello world", "a/sb", "  multiple   spaces  "}
	for _, s := range cases {
		if got := Unescape(Escape(s)); got != s {
			t.Errorf("round trip for %q: got %q", s, got)
		}
	}
}

// TestEncodeDecodeRoundTrip checks that encoding a message and decoding
// it back yields the original author, opcode, and arguments, even when
// an argument itself contains spaces.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	msgs := []Message{
		NewConnect("alice"),
		NewMove("alice", editop.Right),
		NewWriteChar("alice", 'x'),
		NewWriteChar("alice", ' '),
		NewPaste("bob", "multi word\npaste text"),
		NewUndo("alice"),
		NewUsersUpload("host", []UserPos{
			{Username: "alice", Pos: position.New(3, 1)},
			{Username: "bob has spaces", Pos: position.New(0, 0)},
		}),
	}
	for _, m := range msgs {
		encoded := m.Encode()
		trimmed := bytes.TrimSuffix(encoded, Delim)
		got, err := Decode(trimmed)
		if err != nil {
			t.Fatalf("Decode(%q): %v", trimmed, err)
		}
		if got.Author != m.Author || got.Op != m.Op {
			t.Fatalf("Decode(%v) author/op = %q/%q, want %q/%q", m, got.Author, got.Op, m.Author, m.Op)
		}
		if len(got.Args) != len(m.Args) {
			t.Fatalf("Decode(%v) args = %v, want %v", m, got.Args, m.Args)
		}
		for i := range m.Args {
			if got.Args[i] != m.Args[i] {
				t.Errorf("Decode(%v) arg[%d] = %q, want %q", m, i, got.Args[i], m.Args[i])
			}
		}
	}
}

// TestIsSelfEcho is the spec §8 testable property: a broadcast message
// authored by the local user is a self-echo the originator must skip,
// while the same message authored by anyone else is not.
func TestIsSelfEcho(t *testing.T) {
	msg := NewWriteChar("alice", 'x')
	if !IsSelfEcho(msg, "alice") {
		t.Error("IsSelfEcho(alice's message, alice) = false, want true")
	}
	if IsSelfEcho(msg, "bob") {
		t.Error("IsSelfEcho(alice's message, bob) = true, want false")
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte("")); err != ErrMalformed {
		t.Errorf("Decode(empty) = %v, want ErrMalformed", err)
	}
	if _, err := Decode([]byte("onlyauthor")); err != ErrMalformed {
		t.Errorf("Decode(one token) = %v, want ErrMalformed", err)
	}
}

func TestCommandNonEditOpcodeNotACommand(t *testing.T) {
	m := Message{Author: "alice", Op: OpConnect}
	if _, ok := m.Command(); ok {
		t.Error("Command() on a non-edit opcode should report ok=false")
	}
}

func TestScannerFramesOnDelimNotNewline(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(NewPaste("alice", "line one\nline two").Encode())
	buf.Write(NewWriteChar("alice", 'z').Encode())

	sc := NewScanner(bufio.NewReader(&buf))
	var decoded []Message
	for sc.Scan() {
		m, err := Decode(sc.Bytes())
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		decoded = append(decoded, m)
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d messages, want 2", len(decoded))
	}
	if decoded[0].Op != OpPaste || decoded[0].Args[0] != "line one\nline two" {
		t.Errorf("first message = %+v", decoded[0])
	}
	if decoded[1].Op != OpWriteChar || decoded[1].Args[0] != "z" {
		t.Errorf("second message = %+v", decoded[1])
	}
}

func TestCommandFromCommandRoundTrip(t *testing.T) {
	cmds := []editop.Command{
		{Kind: editop.Move, Dir: editop.Up},
		{Kind: editop.WriteChar, Char: 'q'},
		{Kind: editop.Newline},
		{Kind: editop.Backspace},
		{Kind: editop.Paste, Text: "pasted"},
		{Kind: editop.Cut},
		{Kind: editop.Undo},
		{Kind: editop.Redo},
	}
	for _, cmd := range cmds {
		m := FromCommand("alice", cmd)
		got, ok := m.Command()
		if !ok {
			t.Fatalf("Command() for %+v: ok=false", cmd)
		}
		if got != cmd {
			t.Errorf("round trip for %+v: got %+v", cmd, got)
		}
	}
}
