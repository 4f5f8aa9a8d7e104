package history

import (
	"testing"

	"github.com/dshills/collabedit/internal/position"
)

func TestFrameEncodeDecodeRoundTrip(t *testing.T) {
	cases := []*Frame{
		{Kind: CutFrame, Top: position.New(1, 2), Bot: position.New(5, 3), Text: "hello world", Author: "alice"},
		{Kind: InsertFrame, Top: position.New(0, 0), Bot: position.New(4, 0), Author: "bob has spaces"},
		{Kind: CutFrame, Top: position.New(0, 0), Bot: position.New(0, 0), Text: "", Author: ""},
	}
	for _, f := range cases {
		line := f.Encode()
		got, err := DecodeFrame(line)
		if err != nil {
			t.Fatalf("DecodeFrame(%q): %v", line, err)
		}
		if got.Kind != f.Kind || got.Top != f.Top || got.Bot != f.Bot || got.Text != f.Text || got.Author != f.Author {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, f)
		}
	}
}

func TestDecodeFrameMalformed(t *testing.T) {
	if _, err := DecodeFrame("not enough fields"); err == nil {
		t.Error("DecodeFrame(too few fields): want error, got nil")
	}
	if _, err := DecodeFrame("bogus 0 0 0 0 x y"); err == nil {
		t.Error("DecodeFrame(unknown kind): want error, got nil")
	}
}
