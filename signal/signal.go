// Package signal implements component B of the readiness engine: a
// cross-thread channel whose receiver carries a real, OS-pollable file
// descriptor so the engine's selector can drive it exactly like socket
// readiness.
//
// Grounded on original_source/src/sync/signal.rs's SignalSender/
// SignalReceiver, adapted for the fact that this rewrite drives a genuine
// epoll/kqueue/WSAPoll selector rather than mio's userspace
// Registration/SetReadiness pair: where the Rust original flips an
// in-process readiness flag, this Channel writes to an internal/wake.Pipe
// (eventfd on Linux, self-pipe on Darwin, loopback socket on Windows),
// grounded on the teacher's wakeup_linux.go/wakeup_darwin.go/
// wakeup_windows.go.
//
// This package only implements the non-reactive channel plumbing
// (component B). The reactive wrapper that turns a Channel's readiness
// into Reaction values (ReactiveSignalReceiver in the original) is built
// in the root sonr package on top of EventedHandle (component D), since
// it needs access to an engine to register the channel's wake descriptor.
package signal

import (
	"sync"

	"github.com/sonr-go/sonr/internal/wake"
	"github.com/sonr-go/sonr/sonrerr"
)

// Unbounded, when passed to New, disables the capacity check entirely.
const Unbounded = -1

// Channel is a cross-thread value queue paired with an OS wake primitive.
type Channel[T any] struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []T
	capacity int // Unbounded (-1) or a non-negative bound
	senders  int

	wake *wake.Pipe
}

// New creates a Channel. A non-negative capacity bounds the queue depth;
// Unbounded allows it to grow without limit, matching
// original_source's Capacity::Unbounded/Capacity::Bounded.
func New[T any](capacity int) (*Channel[T], error) {
	w, err := wake.New()
	if err != nil {
		return nil, err
	}
	c := &Channel[T]{capacity: capacity, wake: w}
	c.cond = sync.NewCond(&c.mu)
	return c, nil
}

// FD returns the descriptor to register with the selector for readability.
func (c *Channel[T]) FD() int { return int(c.wake.FD()) }

// Sender returns a handle that can push values onto the channel. Senders
// are cheap to share across goroutines; each Send call locks the shared
// channel briefly.
func (c *Channel[T]) Sender() Sender[T] {
	c.mu.Lock()
	c.senders++
	c.mu.Unlock()
	return Sender[T]{ch: c}
}

// TryRecv pops the oldest queued value without blocking. Returns
// sonrerr.ErrChannelEmpty if nothing is queued, or
// sonrerr.ErrChannelDisconnected if the queue is empty and every sender
// has gone away.
func (c *Channel[T]) TryRecv() (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.queue) == 0 {
		if c.senders == 0 {
			return zero, sonrerr.ErrChannelDisconnected
		}
		return zero, sonrerr.ErrChannelEmpty
	}

	v := c.queue[0]
	c.queue = c.queue[1:]
	if len(c.queue) == 0 {
		_ = c.wake.Drain()
	}
	c.cond.Signal()
	return v, nil
}

// Close releases the underlying wake descriptor. Call once all senders
// and the receiver are finished with the channel.
func (c *Channel[T]) Close() error {
	return c.wake.Close()
}

// Sender pushes values onto a Channel, notifying its wake descriptor on
// every send so a selector-driven receiver observes readiness.
type Sender[T any] struct {
	ch *Channel[T]
}

// Send enqueues val without blocking. Returns sonrerr.ErrWouldBlock if the
// channel is bounded and full, matching spec.md §4.B's non-blocking Send
// variant (crossbeam's try_send, which original_source's SignalSender
// wraps); sonrerr.ErrCapacityExhausted stays reserved for slot-vector
// exhaustion (§7 kind 4), a distinct failure mode from channel
// back-pressure.
func (s Sender[T]) Send(val T) error {
	s.ch.mu.Lock()
	if s.ch.capacity >= 0 && len(s.ch.queue) >= s.ch.capacity {
		s.ch.mu.Unlock()
		return sonrerr.ErrWouldBlock
	}
	s.ch.queue = append(s.ch.queue, val)
	s.ch.mu.Unlock()

	return s.ch.wake.Notify()
}

// SendBlocking enqueues val, waiting for space to free up if the channel
// is bounded and full, matching spec.md §4.B's blocking Send variant
// (crossbeam's blocking Sender::send).
func (s Sender[T]) SendBlocking(val T) error {
	s.ch.mu.Lock()
	for s.ch.capacity >= 0 && len(s.ch.queue) >= s.ch.capacity {
		s.ch.cond.Wait()
	}
	s.ch.queue = append(s.ch.queue, val)
	s.ch.mu.Unlock()

	return s.ch.wake.Notify()
}

// Close releases this sender's share of the channel's lifetime. Once
// every Sender handed out by Sender or Clone has called Close, the
// receiver's subsequent TryRecv on an empty queue returns
// sonrerr.ErrChannelDisconnected.
func (s Sender[T]) Close() {
	s.ch.mu.Lock()
	s.ch.senders--
	s.ch.mu.Unlock()
}

// Clone returns an additional Sender referencing the same Channel,
// matching original_source's Clone impl for SignalSender.
func (s Sender[T]) Clone() Sender[T] {
	s.ch.mu.Lock()
	s.ch.senders++
	s.ch.mu.Unlock()
	return Sender[T]{ch: s.ch}
}
