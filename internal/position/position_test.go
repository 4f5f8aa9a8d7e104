package position

import "testing"

func TestCompareOrdering(t *testing.T) {
	cases := []struct {
		a, b Position
		want int
	}{
		{New(0, 0), New(0, 0), 0},
		{New(1, 0), New(0, 0), 1},
		{New(0, 0), New(1, 0), -1},
		{New(5, 0), New(0, 1), -1}, // line dominates column
		{New(0, 2), New(99, 1), 1},
	}
	for _, c := range cases {
		if got := c.a.Compare(c.b); got != c.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	a, b := New(3, 1), New(0, 0)
	r := Normalize(a, b)
	if r.Top != b || r.Bot != a {
		t.Errorf("Normalize(%s, %s) = %s, want top=%s bot=%s", a, b, r, b, a)
	}
	r2 := Normalize(b, a)
	if r2.Top != b || r2.Bot != a {
		t.Errorf("Normalize(%s, %s) = %s, want top=%s bot=%s", b, a, r2, b, a)
	}
}

func TestInRange(t *testing.T) {
	top, bot := New(2, 0), New(5, 1)
	inside := []Position{top, bot, New(3, 0), New(0, 1)}
	for _, p := range inside {
		if !InRange(p, top, bot) {
			t.Errorf("InRange(%s, %s, %s) = false, want true", p, top, bot)
		}
	}
	outside := []Position{New(1, 0), New(6, 1), New(0, 2)}
	for _, p := range outside {
		if InRange(p, top, bot) {
			t.Errorf("InRange(%s, %s, %s) = true, want false", p, top, bot)
		}
	}
}

func TestRewriteOnCutSameLine(t *testing.T) {
	top, bot := New(2, 0), New(5, 0)
	cases := []struct {
		p, want Position
	}{
		{New(0, 0), New(0, 0)},   // before the cut: undisturbed
		{New(3, 0), New(2, 0)},   // inside: collapses to top
		{New(5, 0), New(2, 0)},   // at bot: collapses to top
		{New(7, 0), New(4, 0)},   // after bot, same line: shifts left
		{New(1, 1), New(1, 1)},   // later line: column untouched
	}
	for _, c := range cases {
		if got := RewriteOnCut(top, bot, c.p); got != c.want {
			t.Errorf("RewriteOnCut(%s,%s,%s) = %s, want %s", top, bot, c.p, got, c.want)
		}
	}
}

func TestRewriteOnCutCrossLine(t *testing.T) {
	// Cut spans from (5,0) to (2,2): removes the rest of line 0, all of
	// line 1, and the first two columns of line 2.
	top, bot := New(5, 0), New(2, 2)
	cases := []struct {
		p, want Position
	}{
		{New(3, 0), New(3, 0)},   // before top: untouched
		{New(0, 1), New(5, 0)},   // inside: collapses to top
		{New(2, 2), New(5, 0)},   // at bot: collapses to top
		{New(9, 2), New(12, 0)},  // same line as bot, past it: joins onto top's line
		{New(1, 3), New(1, 1)},   // later line: shifts up by lines removed (2)
	}
	for _, c := range cases {
		if got := RewriteOnCut(top, bot, c.p); got != c.want {
			t.Errorf("RewriteOnCut(%s,%s,%s) = %s, want %s", top, bot, c.p, got, c.want)
		}
	}
}

func TestRewriteOnInsertSameLine(t *testing.T) {
	itop, ibot := New(5, 0), New(8, 0)
	cases := []struct {
		p, want Position
	}{
		{New(0, 0), New(0, 0)},  // before: untouched
		{New(5, 0), New(8, 0)},  // at the insert point: advances past it (tie goes forward)
		{New(7, 0), New(10, 0)}, // after the insert point, same line: shifts right
		{New(0, 1), New(0, 1)},  // later line: untouched
	}
	for _, c := range cases {
		if got := RewriteOnInsert(itop, ibot, c.p); got != c.want {
			t.Errorf("RewriteOnInsert(%s,%s,%s) = %s, want %s", itop, ibot, c.p, got, c.want)
		}
	}
}

func TestRewriteOnInsertCrossLine(t *testing.T) {
	// Insert "ab\ncd" at (5,0): splits line 0 after column 5, leaving
	// "cd" + the tail of the original line 0 on a new line 1.
	itop, ibot := New(5, 0), New(2, 1)
	cases := []struct {
		p, want Position
	}{
		{New(0, 0), New(0, 0)},  // before: untouched
		{New(5, 0), New(2, 1)},  // at the insert point: advances to ibot
		{New(7, 0), New(4, 1)},  // tail of the original line: follows onto the new line
		{New(0, 1), New(0, 2)},  // previously line 1: shifts down by 1 line
	}
	for _, c := range cases {
		if got := RewriteOnInsert(itop, ibot, c.p); got != c.want {
			t.Errorf("RewriteOnInsert(%s,%s,%s) = %s, want %s", itop, ibot, c.p, got, c.want)
		}
	}
}

// TestRewriteRoundTrip verifies the algebra law spec §8 asks for:
// rewriting a position across a cut and then reinserting the exact same
// span restores the original position, for positions unaffected by the
// cut (i.e. not swallowed into it).
func TestRewriteRoundTrip(t *testing.T) {
	top, bot := New(3, 1), New(6, 2)
	probes := []Position{New(0, 0), New(0, 1), New(9, 2), New(0, 4), New(100, 5)}
	for _, p := range probes {
		cut := RewriteOnCut(top, bot, p)
		restored := RewriteOnInsert(top, bot, cut)
		if p.Before(top) {
			if restored != p {
				t.Errorf("round trip for %s: got %s, want %s", p, restored, p)
			}
			continue
		}
		if p.After(bot) || p == bot {
			if restored != p {
				t.Errorf("round trip for %s: got %s, want %s", p, restored, p)
			}
		}
	}
}
