package sonr

import (
	"github.com/sonr-go/sonr/internal/selector"
	"github.com/sonr-go/sonr/signal"
	"github.com/sonr-go/sonr/system"
)

// SignalReceiver reacts whenever new data is ready on a signal.Channel.
// Grounded on original_source/src/sync/signal.rs's ReactiveSignalReceiver,
// built here on top of EventedHandle (component D) since this rewrite
// needs an explicit engine to register the channel's wake descriptor,
// unlike the Rust original's thread-local System.
type SignalReceiver[T any] struct {
	handle *EventedHandle[*signal.Channel[T]]
}

// NewSignalReceiver registers ch's wake descriptor with engine and returns
// a Reactor producing ch's queued values.
func NewSignalReceiver[T any](engine *system.Engine, ch *signal.Channel[T]) (*SignalReceiver[T], error) {
	handle, err := NewEventedHandle[*signal.Channel[T]](engine, ch, ch.FD(), selector.Readable)
	if err != nil {
		return nil, err
	}
	return &SignalReceiver[T]{handle: handle}, nil
}

// Token returns the receiver's registration token.
func (r *SignalReceiver[T]) Token() system.Token { return r.handle.Token() }

// Close deregisters the receiver. The underlying signal.Channel is not
// closed; the caller owns that lifecycle.
func (r *SignalReceiver[T]) Close() { r.handle.Close() }

func (r *SignalReceiver[T]) React(reaction Reaction[system.Event]) Reaction[T] {
	switch reaction.Kind {
	case KindEvent:
		if reaction.Event.Token != r.handle.Token() {
			return Reaction[T]{Kind: KindEvent, Event: reaction.Event}
		}
		if v, err := r.handle.Inner().TryRecv(); err == nil {
			return Value(v)
		}
		return Continue[T]()
	case KindContinue:
		if v, err := r.handle.Inner().TryRecv(); err == nil {
			return Value(v)
		}
		return Continue[T]()
	default:
		return Continue[T]()
	}
}
