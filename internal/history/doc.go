// Package history implements action frames, per-user undo/redo stacks,
// the session-wide history log, and end-of-session reconciliation and
// blame (spec §3, §4.4, §4.5).
//
// Two frame kinds exist: CutFrame (text removed) and InsertFrame (text
// inserted). Frame is the tagged variant spec §9 asks for in place of the
// teacher's (undo_fn, kwargs, redo_fn, args) tuple: it carries exactly
// the positions and text a later undo, redo, rewrite, or reconciliation
// pass needs, with everything as fixed fields instead of a generic args
// map. This is the direct descendant of the teacher's
// internal/engine/history.Command/Operation types, adapted from a
// single-buffer byte-offset model to the multi-participant (column,
// line) model this spec requires.
package history
