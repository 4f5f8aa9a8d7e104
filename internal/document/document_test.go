package document

import (
	"testing"

	"github.com/dshills/collabedit/internal/position"
)

func TestNewIsSingleEmptyLine(t *testing.T) {
	d := New()
	if d.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", d.LineCount())
	}
	if d.Text() != "" {
		t.Fatalf("Text() = %q, want empty", d.Text())
	}
}

func TestInsertSameLine(t *testing.T) {
	d := NewFromString("hello world")
	end, err := d.Insert("cruel ", position.New(6, 0))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if want := position.New(12, 0); end != want {
		t.Errorf("end = %s, want %s", end, want)
	}
	if got := d.Line(0); got != "hello cruel world" {
		t.Errorf("Line(0) = %q, want %q", got, "hello cruel world")
	}
}

func TestInsertMultiLine(t *testing.T) {
	d := NewFromString("hello world")
	end, err := d.Insert("brave\nnew ", position.New(6, 0))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if want := position.New(4, 1); end != want {
		t.Errorf("end = %s, want %s", end, want)
	}
	want := []string{"hello brave", "new world"}
	got := d.Lines()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestCutSameLine(t *testing.T) {
	d := NewFromString("hello world")
	if err := d.Cut(position.New(5, 0), position.New(11, 0)); err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if got := d.Line(0); got != "hello" {
		t.Errorf("Line(0) = %q, want %q", got, "hello")
	}
}

func TestCutCrossLine(t *testing.T) {
	d := NewFromString("one\ntwo\nthree")
	if err := d.Cut(position.New(1, 0), position.New(2, 2)); err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if got := d.Text(); got != "oree" {
		t.Errorf("Text() = %q, want %q", got, "oree")
	}
	if d.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", d.LineCount())
	}
}

func TestRangeTextMultiLine(t *testing.T) {
	d := NewFromString("one\ntwo\nthree")
	got, err := d.RangeText(position.New(1, 0), position.New(2, 2))
	if err != nil {
		t.Fatalf("RangeText: %v", err)
	}
	if want := "ne\ntwo\nth"; got != want {
		t.Errorf("RangeText = %q, want %q", got, want)
	}
}

func TestRangeTextNormalizesOrder(t *testing.T) {
	d := NewFromString("hello")
	got, err := d.RangeText(position.New(5, 0), position.New(1, 0))
	if err != nil {
		t.Fatalf("RangeText: %v", err)
	}
	if got != "ello" {
		t.Errorf("RangeText = %q, want %q", got, "ello")
	}
}

func TestInsertCutRoundTrip(t *testing.T) {
	d := NewFromString("the quick brown fox")
	top, bot := position.New(4, 0), position.New(10, 0)
	text, err := d.RangeText(top, bot)
	if err != nil {
		t.Fatalf("RangeText: %v", err)
	}
	if err := d.Cut(top, bot); err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if _, err := d.Insert(text, top); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := d.Text(); got != "the quick brown fox" {
		t.Errorf("round trip: got %q, want original restored", got)
	}
}

func TestClamp(t *testing.T) {
	d := NewFromString("short\na much longer line")
	cases := []struct {
		in, want position.Position
	}{
		{position.New(0, 0), position.New(0, 0)},
		{position.New(100, 0), position.New(5, 0)},
		{position.New(3, 1), position.New(3, 1)},
		{position.New(0, 5), position.New(0, 1)}, // out-of-range line clamps to last line
	}
	for _, c := range cases {
		if got := d.Clamp(c.in); got != c.want {
			t.Errorf("Clamp(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestOutOfRangePosition(t *testing.T) {
	d := NewFromString("abc")
	if _, err := d.Insert("x", position.New(0, 5)); err == nil {
		t.Error("Insert at out-of-range line: want error, got nil")
	}
	if err := d.Cut(position.New(0, 0), position.New(0, 5)); err == nil {
		t.Error("Cut to out-of-range line: want error, got nil")
	}
}
