// Package sonrerr defines the error taxonomy shared by every sonr package.
//
// Grounded on the teacher's errors.go cause-chain idiom (WrapError, Unwrap
// for errors.Is/errors.As) and original_source/src/errors.rs's Error enum,
// translated into typed Go errors instead of a Rust enum.
package sonrerr

import (
	"errors"
	"fmt"
)

// ErrWouldBlock indicates a non-blocking syscall had nothing ready.
// Whoever observes it clears the readiness latch and reregisters: the
// listener reactors then report Continue, while netio.Stream's Read and
// Write also return ErrWouldBlock to their caller.
var ErrWouldBlock = errors.New("sonr: operation would block")

// ErrNoSuchToken indicates a Token was used that the engine never issued,
// or that has already been freed.
var ErrNoSuchToken = errors.New("sonr: no such token")

// ErrCapacityExhausted indicates a slot vector with growth disabled
// received an insert beyond its capacity.
var ErrCapacityExhausted = errors.New("sonr: capacity exhausted")

// ErrAlreadyRegistered indicates an EventedHandle attempted to register a
// token that the selector already holds an interest set for.
var ErrAlreadyRegistered = errors.New("sonr: token already registered")

// ErrChannelEmpty indicates a non-blocking receive found no pending value.
var ErrChannelEmpty = errors.New("sonr: channel empty")

// ErrChannelDisconnected indicates every sender for a channel has gone away.
var ErrChannelDisconnected = errors.New("sonr: channel disconnected")

// ConnectionRemovedError reports that a stream's underlying socket was
// torn down by the peer or the OS (closed, reset, or hung up) for the
// given Token. netio.Stream's React carries it inside a Reaction Value,
// so that a downstream reactor can observe peer-close without the engine
// itself treating it as fatal; Stream's Read and Write return it as their
// error.
type ConnectionRemovedError struct {
	Token uint64
	Cause error
}

func (e *ConnectionRemovedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sonr: connection removed (token %d): %s", e.Token, e.Cause)
	}
	return fmt.Sprintf("sonr: connection removed (token %d)", e.Token)
}

func (e *ConnectionRemovedError) Unwrap() error {
	return e.Cause
}

// AddrParseError wraps a failure to parse a listener address.
type AddrParseError struct {
	Raw   string
	Cause error
}

func (e *AddrParseError) Error() string {
	return fmt.Sprintf("sonr: invalid address %q: %s", e.Raw, e.Cause)
}

func (e *AddrParseError) Unwrap() error {
	return e.Cause
}

// Wrap attaches a message to cause, preserving the cause chain for
// errors.Is/errors.As, matching the teacher's WrapError helper.
func Wrap(message string, cause error) error {
	return fmt.Errorf("%s: %w", message, cause)
}
