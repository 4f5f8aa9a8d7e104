// Package session implements the star-topology TCP transport that
// carries protocol.Message frames between a host process and its
// connected clients. The host holds the authoritative engine.Engine;
// each client connection gets its own reader and writer goroutine, and
// every accepted message is funneled through a single broadcast queue
// so the host's dispatch stays race-free without the host ever holding
// a network lock while touching engine state.
package session
