package sonr

import (
	"github.com/sonr-go/sonr/internal/selector"
	"github.com/sonr-go/sonr/signal"
	"github.com/sonr-go/sonr/system"
)

// Generator drains a fixed slice of values, one per React call, then
// reports Continue forever.
//
// Grounded on original_source/src/reactor/producers.rs's
// ReactiveGenerator and its mio Registration::new2()/SetReadiness
// self-trigger: spec.md §9's Open Question resolution rejects
// synchronous inline emission (a producer that isn't registered with the
// engine would never fire inside the event loop), so this builds the
// same self-wake shape queue.Dequeue uses — component B's signal.Channel
// plus component D's EventedHandle — and sends once at construction so
// the engine's very first poll delivers a real readiness Event for the
// generator's own token.
type Generator[T any] struct {
	handle *EventedHandle[*signal.Channel[struct{}]]
	values []T
	next   int
}

// NewGenerator registers a self-trigger with engine and returns a Reactor
// draining values in order, one per delivered Event or Continue.
func NewGenerator[T any](engine *system.Engine, values []T) (*Generator[T], error) {
	ch, err := signal.New[struct{}](signal.Unbounded)
	if err != nil {
		return nil, err
	}
	handle, err := NewEventedHandle[*signal.Channel[struct{}]](engine, ch, ch.FD(), selector.Readable)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}
	if err := ch.Sender().Send(struct{}{}); err != nil {
		handle.Close()
		_ = ch.Close()
		return nil, err
	}
	return &Generator[T]{handle: handle, values: values}, nil
}

// Token returns the generator's self-trigger registration token.
func (g *Generator[T]) Token() system.Token { return g.handle.Token() }

// Close deregisters the generator's self-trigger and releases its wake
// descriptor.
func (g *Generator[T]) Close() {
	g.handle.Close()
	_ = g.handle.Inner().Close()
}

func (g *Generator[T]) pop() Reaction[T] {
	// Drain the self-trigger notification so nothing but this one
	// construction-time Send ever lands on the wake descriptor; the
	// value, if any, comes from the values slice, not the channel.
	_, _ = g.handle.Inner().TryRecv()
	if g.next < len(g.values) {
		v := g.values[g.next]
		g.next++
		return Value(v)
	}
	return Continue[T]()
}

// React implements Reactor[system.Event, T], matching ReactiveGenerator's
// react: an Event for this generator's token, or a Continue, triggers a
// pop attempt; any other token passes through unchanged.
func (g *Generator[T]) React(reaction Reaction[system.Event]) Reaction[T] {
	switch reaction.Kind {
	case KindEvent:
		if reaction.Event.Token != g.handle.Token() {
			return Reaction[T]{Kind: KindEvent, Event: reaction.Event}
		}
		return g.pop()
	case KindContinue:
		return g.pop()
	default:
		return Continue[T]()
	}
}

// Mono produces exactly one value the first time it is reacted to, then
// reports Continue forever. Built as a Generator over a single-element
// slice, matching original_source's Mono, which is itself documented
// there as a Generator wrapper holding one value.
type Mono[T any] struct {
	inner *Generator[T]
}

// NewMono registers a self-trigger with engine and returns a Reactor that
// yields val exactly once.
func NewMono[T any](engine *system.Engine, val T) (*Mono[T], error) {
	inner, err := NewGenerator(engine, []T{val})
	if err != nil {
		return nil, err
	}
	return &Mono[T]{inner: inner}, nil
}

// Token returns the mono's self-trigger registration token.
func (m *Mono[T]) Token() system.Token { return m.inner.Token() }

// Close deregisters the mono's self-trigger.
func (m *Mono[T]) Close() { m.inner.Close() }

func (m *Mono[T]) React(reaction Reaction[system.Event]) Reaction[T] {
	return m.inner.React(reaction)
}
