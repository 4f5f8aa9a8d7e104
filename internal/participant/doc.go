// Package participant holds the per-user caret/selection/undo-redo table
// that the operation engine rewrites on every edit.
//
// A Participant is addressed everywhere else in the system by its
// username string — never by pointer — per spec §9's note on avoiding
// back-references: the engine looks participants up in its Table each
// time it needs one, so a participant can be replaced or removed without
// invalidating references held elsewhere. This mirrors the teacher's
// cursor.CursorSet, generalized from "one set of cursors for the local
// buffer" to "one entry per connected username."
package participant
