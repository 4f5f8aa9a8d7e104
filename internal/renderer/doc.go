// Package renderer turns an engine.Snapshot into a read-only View: a
// grid of display cells with per-author cursor and selection overlays
// and a deterministic color assigned to each author. The renderer
// never mutates document or participant state — it only consumes a
// Snapshot and produces cells for a terminal frontend (or an export
// filter) to draw.
package renderer
