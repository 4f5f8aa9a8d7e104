// Package document provides a thread-safe, line-indexed text buffer.
//
// Unlike the teacher's byte-rope buffer, Document stores text as a slice
// of lines directly, because the collaborative engine's position algebra
// (internal/position) and wire protocol operate natively in (column,
// line) space rather than byte offsets — every rewrite rule in spec §4.1
// is stated in terms of lines and columns, so keeping the buffer in that
// same coordinate system avoids a conversion layer on every edit.
//
// A Document is never empty: the empty document is the single line [""].
// Insert and Cut are the only mutating primitives; everything else
// (character insert, newline, backspace, paste, cut-selection) is built
// from them by the operation engine in internal/engine.
package document
