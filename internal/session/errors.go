package session

import "errors"

var (
	// ErrRejected names a connection the host refused with -DCH during
	// the connect handshake. Dial does not wait for that reply and does
	// not return it.
	ErrRejected = errors.New("session: connection rejected by host")
	// ErrUsernameInUse names a chosen username that the host's initial
	// -U upload already lists. No function in this package returns it.
	ErrUsernameInUse = errors.New("session: username already connected")
	// ErrNotConnected names a send on a closed connection. Send does not
	// return it; it returns the wrapped write error instead.
	ErrNotConnected = errors.New("session: not connected")
)
