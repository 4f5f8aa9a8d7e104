package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/collabedit/internal/document"
	"github.com/dshills/collabedit/internal/history"
	"github.com/dshills/collabedit/internal/logging"
	"github.com/dshills/collabedit/internal/participant"
	"github.com/dshills/collabedit/internal/position"
)

// Engine is the collaborative editing engine for one open file. It
// owns the document, the table of connected participants, and the
// session-wide history log, and is the sole entry point for mutating
// any of them.
type Engine struct {
	actionMu sync.Mutex // serializes all mutating operations; acquired first (spec §5)

	doc          *document.Document
	participants *participant.Table

	logMu sync.Mutex
	log   []*history.Frame

	clipMu    sync.Mutex
	clipboard string

	dirtyMu    sync.Mutex
	dirtyLines map[uint32]struct{}

	owner        string
	sessionStart int64
	logger       *logging.Logger
}

// New creates an engine over an empty document, owned by owner.
func New(owner string, sessionStart int64, logger *logging.Logger) *Engine {
	return newEngine(document.New(), owner, sessionStart, logger)
}

// NewFromText creates an engine pre-populated with text, owned by
// owner — used when a host opens an existing file.
func NewFromText(owner, text string, sessionStart int64, logger *logging.Logger) *Engine {
	return newEngine(document.NewFromString(text), owner, sessionStart, logger)
}

func newEngine(doc *document.Document, owner string, sessionStart int64, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.New(nil, "engine", logging.Info)
	}
	e := &Engine{
		doc:          doc,
		participants: participant.NewTable(),
		dirtyLines:   make(map[uint32]struct{}),
		owner:        owner,
		sessionStart: sessionStart,
		logger:       logger,
	}
	e.participants.Add(owner)
	return e
}

// Connect registers a new participant. It is an error to connect a
// username already present in this session.
func (e *Engine) Connect(username string) (*participant.Participant, error) {
	e.actionMu.Lock()
	defer e.actionMu.Unlock()
	if _, ok := e.participants.Get(username); ok {
		return nil, ErrParticipantExists
	}
	p := e.participants.Add(username)
	e.logger.Infof("participant connected", logging.F("user", username))
	return p, nil
}

// Disconnect removes a participant from the session. Its history
// stacks are dropped; its past edits remain in the session log.
func (e *Engine) Disconnect(username string) {
	e.actionMu.Lock()
	defer e.actionMu.Unlock()
	e.participants.Remove(username)
	e.logger.Infof("participant disconnected", logging.F("user", username))
}

// Owner returns the username that started this session.
func (e *Engine) Owner() string { return e.owner }

// SessionStart returns the session's start timestamp, the key used to
// name its persisted artifacts.
func (e *Engine) SessionStart() int64 { return e.sessionStart }

// Participant looks up one connected participant's live state.
func (e *Engine) Participant(username string) (*participant.Participant, bool) {
	return e.participants.Get(username)
}

// Usernames returns the currently connected usernames.
func (e *Engine) Usernames() []string { return e.participants.Usernames() }

// Clipboard returns the session's shared clipboard text, last set by
// an explicit cut operation.
func (e *Engine) Clipboard() string {
	e.clipMu.Lock()
	defer e.clipMu.Unlock()
	return e.clipboard
}

// Text returns the full document text.
func (e *Engine) Text() string { return e.doc.Text() }

// Lines returns a copy of the document's lines.
func (e *Engine) Lines() []string { return e.doc.Lines() }

// Log returns a copy of the session's raw history log, in application
// order.
func (e *Engine) Log() []*history.Frame {
	e.logMu.Lock()
	defer e.logMu.Unlock()
	out := make([]*history.Frame, len(e.log))
	copy(out, e.log)
	return out
}

func (e *Engine) appendLog(frames ...*history.Frame) {
	if len(frames) == 0 {
		return
	}
	e.logMu.Lock()
	e.log = append(e.log, frames...)
	e.logMu.Unlock()
}

// rewriteAll pushes every connected participant's caret, selection
// anchor, and pending undo-stack frames through f (spec §4.3). This is
// the step that keeps every OTHER participant's view consistent after
// one participant's edit; it is applied uniformly to all participants,
// including the one who made the edit, since the position algebra
// itself (not a special case) is what advances the editor's own caret
// past what they just typed.
func (e *Engine) rewriteAll(f func(position.Position) position.Position) {
	e.participants.Each(func(p *participant.Participant) {
		p.Rewrite(f)
	})
}

// markDirty records every line touched by a cut or insert spanning
// [top, bot], for the renderer's change overlay (supplemented feature,
// SPEC_FULL §12).
func (e *Engine) markDirty(top, bot position.Position) {
	e.dirtyMu.Lock()
	defer e.dirtyMu.Unlock()
	for l := top.Line; l <= bot.Line; l++ {
		e.dirtyLines[l] = struct{}{}
	}
}

// drainDirty returns the sorted set of lines touched since the last
// call and resets it.
func (e *Engine) drainDirty() []uint32 {
	e.dirtyMu.Lock()
	defer e.dirtyMu.Unlock()
	out := make([]uint32, 0, len(e.dirtyLines))
	for l := range e.dirtyLines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	e.dirtyLines = make(map[uint32]struct{})
	return out
}

func (e *Engine) priorPosition(caret position.Position) position.Position {
	if caret.Col > 0 {
		return position.New(caret.Col-1, caret.Line)
	}
	if caret.Line > 0 {
		return position.New(e.doc.LineLen(caret.Line-1), caret.Line-1)
	}
	return caret
}

// Now is the session's wall-clock source, factored out so tests can
// substitute a fixed clock.
var Now = func() int64 { return time.Now().Unix() }
