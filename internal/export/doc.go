// Package export renders a renderer.View to a portable document
// format: HTML, RTF, or a minimal single-stream PDF. Each converter is
// a pure function with no dependency on engine or network state, so a
// host can export a session's final text independently of any live
// connection. There is no general-purpose RTF or PDF writer in the
// retrieval pack this module draws its dependency stack from, so these
// filters are hand-rolled with stdlib fmt, html, and strings.Builder
// rather than an imported library.
package export
