// Package protocol implements the line-based wire codec that couples
// hosts to clients (spec §4.6, §6).
//
// Every message is a sequence of space-separated ASCII tokens terminated
// by the 3-byte delimiter 0x20 0x0A 0x1E. The first token is the
// author's username, the second is an opcode, and the rest are
// opcode-specific. A literal space inside a token is escaped as "/s" —
// this is the spec's mandated fix (§9 Open Questions) for the original
// implementation's single-space split, which corrupted any payload
// containing more than one space-separated field.
//
// Decode never fails loudly: it returns ErrMalformed only for an empty
// frame or one with fewer than two tokens, and decodes any opcode, known
// or not (ErrUnknownOpcode is not returned by Decode). An unknown
// opcode, or too few arguments for a known one, makes Message.Command
// report ok=false; callers are expected to log at debug level and drop
// such a message (spec §7, Protocol error taxonomy) rather than tear
// down the connection.
package protocol
