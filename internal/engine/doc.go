// Package engine is the collaborative editing engine: it owns the
// document, the participant table, the session-wide history log, and
// the blame vector, and is the only place edits are applied (spec §4.3,
// §4.4, §4.5).
//
// Every mutating call follows the same template: snapshot the acting
// participant's caret and anchor, cut the current selection if any
// (recording a cut frame), apply the forward edit itself (recording an
// insert frame if it added text), rewrite every participant's caret,
// anchor, and stored undo records (the acting participant's included)
// through the position algebra in internal/position, then push the
// composite undo record.
// This generalizes the teacher's internal/engine/buffer +
// internal/engine/cursor + internal/engine/history trio from a single
// local editor's offset space to an arbitrary number of simultaneously
// connected participants working in (column, line) space.
//
// Every mutating call holds actionMu for its whole duration, and
// actionMu also guards participant carets, anchors, and stacks, which
// carry no lock of their own. The participant table and the document
// each have their own lock, taken briefly after actionMu, so the order
// is always actionMu -> participants' table lock -> document. The
// history log, clipboard, and dirty-line set each have a small mutex.
package engine
