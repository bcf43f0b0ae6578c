package queue

import (
	"sync"

	sonr "github.com/sonr-go/sonr"
	"github.com/sonr-go/sonr/internal/selector"
	"github.com/sonr-go/sonr/signal"
	"github.com/sonr-go/sonr/system"
)

// store is the shared, mutex-guarded backing slice every Dequeue steals
// from. Standing in for crossbeam's lock-free Worker/Stealer pair; see
// the package doc comment.
type store[T any] struct {
	mu    sync.Mutex
	items []T
}

func (s *store[T]) push(v T) {
	s.mu.Lock()
	s.items = append(s.items, v)
	s.mu.Unlock()
}

func (s *store[T]) steal() (T, bool) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[0]
	s.items = s.items[1:]
	return v, true
}

// Queue is the owning side of a work queue: Push enqueues a value and
// wakes every Dequeue created from this Queue, matching Queue::push's
// "push then notify every publisher" sequence.
type Queue[T any] struct {
	mu    sync.Mutex
	store *store[T]
	wakes []signal.Sender[struct{}]

	capacity int
}

// NewQueue constructs a Queue. capacity is passed through to each
// Dequeue's internal wake channel (signal.Unbounded disables the bound);
// the item backlog itself is never capped, matching the original's
// Capacity only ever bounding the signal, not the deque.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{store: &store[T]{}, capacity: capacity}
}

// Push enqueues val and wakes every registered Dequeue.
func (q *Queue[T]) Push(val T) {
	q.store.push(val)
	q.mu.Lock()
	wakes := q.wakes
	q.mu.Unlock()
	for _, w := range wakes {
		_ = w.Send(struct{}{})
	}
}

// NewDequeue registers a new consumer on engine, returning a Reactor that
// yields stolen values, matching Queue::deque.
func (q *Queue[T]) NewDequeue(engine *system.Engine) (*Dequeue[T], error) {
	ch, err := signal.New[struct{}](q.capacity)
	if err != nil {
		return nil, err
	}
	handle, err := sonr.NewEventedHandle[*signal.Channel[struct{}]](engine, ch, ch.FD(), selector.Readable)
	if err != nil {
		return nil, err
	}

	sender := ch.Sender()
	q.mu.Lock()
	q.wakes = append(q.wakes, sender)
	q.mu.Unlock()

	return &Dequeue[T]{handle: handle, store: q.store}, nil
}

// Dequeue is component H's consumer side: a Reactor that steals queued
// values on wake-up, matching original_source's ReactiveDeque.
type Dequeue[T any] struct {
	handle *sonr.EventedHandle[*signal.Channel[struct{}]]
	store  *store[T]
}

// Token returns the dequeue's registration token.
func (d *Dequeue[T]) Token() system.Token { return d.handle.Token() }

// Close deregisters the dequeue's wake channel. The channel is not
// closed; the owning Queue's sender lifecycle covers that.
func (d *Dequeue[T]) Close() { d.handle.Close() }

func (d *Dequeue[T]) steal() sonr.Reaction[T] {
	// Drain the wake notification so a future Send re-arms the edge
	// trigger; the value, if any, comes from the shared store, not the
	// signal channel itself.
	_, _ = d.handle.Inner().TryRecv()
	if v, ok := d.store.steal(); ok {
		return sonr.Value(v)
	}
	return sonr.Continue[T]()
}

// React implements sonr.Reactor[system.Event, T], matching
// ReactiveDeque::react: an Event for this dequeue's token, or a
// Continue, triggers a steal attempt; any other token passes through
// unchanged.
func (d *Dequeue[T]) React(reaction sonr.Reaction[system.Event]) sonr.Reaction[T] {
	switch reaction.Kind {
	case sonr.KindEvent:
		if reaction.Event.Token != d.handle.Token() {
			return sonr.Reaction[T]{Kind: sonr.KindEvent, Event: reaction.Event}
		}
		return d.steal()
	case sonr.KindContinue:
		return d.steal()
	default:
		return sonr.Continue[T]()
	}
}

// ReactivePush wraps a Queue so it can sit downstream of a producer
// Reactor: every Value it receives is pushed, matching
// original_source's ReactiveQueue<T>.
type ReactivePush[T any] struct {
	queue *Queue[T]
}

// NewReactivePush builds a push-side Reactor over queue.
func NewReactivePush[T any](queue *Queue[T]) *ReactivePush[T] {
	return &ReactivePush[T]{queue: queue}
}

func (p *ReactivePush[T]) React(reaction sonr.Reaction[T]) sonr.Reaction[struct{}] {
	if reaction.Kind != sonr.KindValue {
		return sonr.Continue[struct{}]()
	}
	p.queue.Push(reaction.Value)
	return sonr.Value(struct{}{})
}
