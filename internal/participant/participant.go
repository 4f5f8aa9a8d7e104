package participant

import (
	"sync"

	"github.com/dshills/collabedit/internal/history"
	"github.com/dshills/collabedit/internal/position"
)

// Participant is one connected user's caret, selection anchor, and
// undo/redo history (spec §3). The host itself is a Participant like
// any other.
type Participant struct {
	Username string
	Caret    position.Position
	Anchor   *position.Position // nil when nothing is selected
	Stacks   history.Stacks
}

// NewParticipant creates a participant at the document origin with no
// selection and empty history stacks.
func NewParticipant(username string) *Participant {
	return &Participant{Username: username, Caret: position.New(0, 0)}
}

// HasSelection reports whether the participant currently has a
// selection anchor set; the anchor may coincide with the caret.
func (p *Participant) HasSelection() bool {
	return p.Anchor != nil
}

// SelectionRange returns the normalized selection range and true if a
// selection is active.
func (p *Participant) SelectionRange() (position.Range, bool) {
	if p.Anchor == nil {
		return position.Range{}, false
	}
	return position.Normalize(*p.Anchor, p.Caret), true
}

// ClearSelection drops the selection anchor, collapsing to the caret.
func (p *Participant) ClearSelection() {
	p.Anchor = nil
}

// Rewrite pushes the caret, the selection anchor when present, and the
// positions held by every record on the undo stack through f — the
// position-algebra rewrite of spec §4.3. The engine rewrites every
// participant this way, the one who made the edit included, after each
// document mutation.
func (p *Participant) Rewrite(f func(position.Position) position.Position) {
	p.Caret = f(p.Caret)
	if p.Anchor != nil {
		a := f(*p.Anchor)
		p.Anchor = &a
	}
	for _, r := range p.Stacks.Undo {
		rewriteRecord(r, f)
	}
}

func rewriteRecord(r *history.Record, f func(position.Position) position.Position) {
	r.Caret = f(r.Caret)
	if r.Anchor != nil {
		a := f(*r.Anchor)
		r.Anchor = &a
	}
	for _, fr := range r.Frames() {
		fr.Top = f(fr.Top)
		fr.Bot = f(fr.Bot)
	}
}

// Table is the thread-safe username-to-Participant registry the engine
// consults on every operation. Participants are addressed by username
// everywhere else in the system, never by pointer held across calls, so
// that a disconnect-then-reconnect or a replacement never invalidates a
// reference another goroutine is holding (spec §9).
type Table struct {
	mu   sync.RWMutex
	byID map[string]*Participant
}

// NewTable returns an empty participant table.
func NewTable() *Table {
	return &Table{byID: make(map[string]*Participant)}
}

// Add registers a new participant, replacing any existing entry for the
// same username.
func (t *Table) Add(username string) *Participant {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := NewParticipant(username)
	t.byID[username] = p
	return p
}

// Remove drops a participant from the table.
func (t *Table) Remove(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.byID, username)
}

// Get looks up a participant by username.
func (t *Table) Get(username string) (*Participant, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.byID[username]
	return p, ok
}

// Each calls f for every current participant. f must not mutate the
// table itself (add/remove); it may mutate the participants in place.
func (t *Table) Each(f func(*Participant)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, p := range t.byID {
		f(p)
	}
}

// Usernames returns a snapshot of the currently connected usernames.
func (t *Table) Usernames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.byID))
	for u := range t.byID {
		out = append(out, u)
	}
	return out
}

// Len reports the number of connected participants.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}
