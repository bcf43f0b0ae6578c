package broadcast

import (
	"sync"

	sonr "github.com/sonr-go/sonr"
	"github.com/sonr-go/sonr/signal"
)

// Broadcast fans a value out to every subscriber, matching
// original_source/src/sync/broadcast.rs's Broadcast<T>. T should be
// cheap to copy (assignment stands in for Rust's Clone bound); a
// subscriber send failing (a bounded channel full) does not stop
// delivery to the rest, matching Publish's per-subscriber match arm.
type Broadcast[T any] struct {
	mu       sync.Mutex
	subs     []signal.Sender[T]
	capacity int
}

// New constructs a Broadcast. capacity bounds each subscriber's queue
// (signal.Unbounded disables the bound).
func New[T any](capacity int) *Broadcast[T] {
	return &Broadcast[T]{capacity: capacity}
}

// Subscribe registers a new receiver channel and returns it; the caller
// typically wraps it with sonr.NewSignalReceiver to drive it from an
// engine, matching Broadcast::subscriber.
func (b *Broadcast[T]) Subscribe() (*signal.Channel[T], error) {
	ch, err := signal.New[T](b.capacity)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.subs = append(b.subs, ch.Sender())
	b.mu.Unlock()
	return ch, nil
}

// Publish sends val to every current subscriber, matching
// Broadcast::publish. A full bounded subscriber simply misses this
// value; publication continues to the rest.
func (b *Broadcast[T]) Publish(val T) {
	b.mu.Lock()
	subs := make([]signal.Sender[T], len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		_ = s.Send(val)
	}
}

// ReactivePublish wraps a Broadcast as a Reactor: every Value it
// receives is published downstream, matching ReactiveBroadcast<T>.
type ReactivePublish[T any] struct {
	inner *Broadcast[T]
}

// NewReactivePublish builds a push-side Reactor over b.
func NewReactivePublish[T any](b *Broadcast[T]) *ReactivePublish[T] {
	return &ReactivePublish[T]{inner: b}
}

// React implements sonr.Reactor[T, struct{}]. Matching
// ReactiveBroadcast's reacting always returning false (it isn't
// Evented), this Reactor never observes Events of its own; only Values
// drive it.
func (p *ReactivePublish[T]) React(reaction sonr.Reaction[T]) sonr.Reaction[struct{}] {
	if reaction.Kind != sonr.KindValue {
		return sonr.Continue[struct{}]()
	}
	p.inner.Publish(reaction.Value)
	return sonr.Value(struct{}{})
}
