package sonr

import (
	"github.com/sonr-go/sonr/internal/selector"
	"github.com/sonr-go/sonr/system"
)

// EventedHandle is component D: it owns a Token and the registration of an
// underlying OS descriptor, and latches which interests are currently
// believed ready.
//
// Grounded on original_source/src/reactor/mod.rs's EventedReactor: New
// reserves a token and registers the descriptor; a WouldBlock observed by
// the caller clears the corresponding readiness latch and reregisters
// (exactly once per occurrence, not in a retry loop, matching the Rust
// Read/Write impls' single reregister-then-return-the-error behavior);
// Close frees the token, matching EventedReactor's Drop impl.
type EventedHandle[H any] struct {
	engine   *system.Engine
	inner    H
	fd       int
	token    system.Token
	interest selector.Interest

	readable bool
	writable bool
}

// NewEventedHandle reserves a token on engine and registers fd for
// interest, storing inner (the caller's representation of the underlying
// resource, e.g. a raw socket fd wrapper) alongside.
func NewEventedHandle[H any](engine *system.Engine, inner H, fd int, interest selector.Interest) (*EventedHandle[H], error) {
	token, err := engine.ReserveToken()
	if err != nil {
		return nil, err
	}
	if err := engine.Register(fd, token, interest); err != nil {
		engine.FreeToken(token)
		return nil, err
	}
	return &EventedHandle[H]{
		engine:   engine,
		inner:    inner,
		fd:       fd,
		token:    token,
		interest: interest,
	}, nil
}

// Token returns the handle's registration token.
func (h *EventedHandle[H]) Token() system.Token { return h.token }

// Inner returns the caller's stored resource value.
func (h *EventedHandle[H]) Inner() H { return h.inner }

// InnerPtr returns a pointer to the caller's stored resource value,
// allowing in-place mutation.
func (h *EventedHandle[H]) InnerPtr() *H { return &h.inner }

// IsReadable reports the handle's latched read-readiness.
func (h *EventedHandle[H]) IsReadable() bool { return h.readable }

// IsWritable reports the handle's latched write-readiness.
func (h *EventedHandle[H]) IsWritable() bool { return h.writable }

// Observe applies a system.Event matching this handle's token, latching
// whichever interests it reports ready. Callers should check
// ev.Token == h.Token() before calling Observe.
func (h *EventedHandle[H]) Observe(ev system.Event) {
	if ev.Readable {
		h.readable = true
	}
	if ev.Writable {
		h.writable = true
	}
}

// MarkWouldBlock clears the latch for the interest that returned
// WouldBlock (readable or writable) and reregisters with the engine so
// the edge-triggered notification is reinstated, matching
// EventedReactor's Read/Write WouldBlock handling.
func (h *EventedHandle[H]) MarkWouldBlock(readable bool) error {
	if readable {
		h.readable = false
	} else {
		h.writable = false
	}
	return h.engine.Reregister(h.fd, h.token, h.interest)
}

// MarkFailed clears both latches without reregistering, for non-WouldBlock
// I/O errors (connection reset/aborted/refused) that make the descriptor
// unusable.
func (h *EventedHandle[H]) MarkFailed() {
	h.readable = false
	h.writable = false
}

// Close deregisters the descriptor and frees the token, matching
// EventedReactor's Drop impl. It does not close fd itself — the caller
// owns that lifecycle (the underlying socket may need a final flush or
// linger configuration the handle has no opinion on).
func (h *EventedHandle[H]) Close() {
	_ = h.engine.Deregister(h.fd)
	h.engine.FreeToken(h.token)
}
