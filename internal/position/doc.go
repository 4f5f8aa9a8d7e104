// Package position provides the pure position algebra shared by every
// other package in the collaborative editing engine.
//
// A Position is a (Column, Line) pair, both zero-based. Positions are
// compared lexicographically on (Line, Column). A Range is an ordered
// pair of positions with Top <= Bot.
//
// The two rewrite functions, RewriteOnCut and RewriteOnInsert, are the
// load-bearing primitives of the whole system: every caret, selection
// anchor, and pending undo/redo frame held by every participant is kept
// valid across a remote edit by pushing it through these functions. They
// are pure and total — they never fail and never need the document to
// compute their result.
package position
