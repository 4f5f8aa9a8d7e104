package engine

import "errors"

// Errors returned by engine operations (spec §7: errors are local,
// visible effects, never panics that cross an operation boundary).
var (
	// ErrNothingToUndo indicates a participant's undo stack is empty.
	ErrNothingToUndo = errors.New("engine: nothing to undo")

	// ErrNothingToRedo indicates a participant's redo stack is empty.
	ErrNothingToRedo = errors.New("engine: nothing to redo")

	// ErrUnknownAuthor indicates an operation named a participant not
	// present in the engine's table.
	ErrUnknownAuthor = errors.New("engine: unknown author")

	// ErrParticipantExists indicates a connect used a username already
	// registered in this session.
	ErrParticipantExists = errors.New("engine: participant already connected")
)
