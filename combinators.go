package sonr

// Chain feeds the output of From as the input of To: From.Output must
// equal To.Input. Grounded on original_source/src/reactor/combinators.rs's
// Chain: an Event reaction passes straight through to To (letting To
// decide if the event is its own); a Value reaction is pushed into To and
// then From is asked to Continue, repeating until From reports Continue;
// a Continue reaction polls To for more buffered output, returning that
// output if To has any and reporting Continue otherwise.
type Chain[I, M, O any] struct {
	from Reactor[I, M]
	to   Reactor[M, O]
}

// NewChain builds a Chain combinator.
func NewChain[I, M, O any](from Reactor[I, M], to Reactor[M, O]) *Chain[I, M, O] {
	return &Chain[I, M, O]{from: from, to: to}
}

func (c *Chain[I, M, O]) React(r Reaction[I]) Reaction[O] {
	r1 := c.from.React(r)
	for {
		switch r1.Kind {
		case KindEvent:
			return c.to.React(Reaction[M]{Kind: KindEvent, Event: r1.Event})
		case KindValue:
			c.to.React(Value(r1.Value))
			r1 = c.from.React(Continue[I]())
		case KindContinue:
			out := c.to.React(Continue[M]())
			if out.Kind == KindContinue {
				return Continue[O]()
			}
			return out
		}
	}
}

// And drives two reactors independently off the same Event, discarding
// both outputs. Grounded on combinators.rs's And: only Event reactions
// drive both children; Value/Continue reactions just report Continue,
// since And has no onward consumer for either child's output.
type And[I, O1, O2 any] struct {
	first  Reactor[I, O1]
	second Reactor[I, O2]
}

// NewAnd builds an And combinator from two same-input reactors whose
// outputs are driven independently and discarded.
func NewAnd[I, O1, O2 any](first Reactor[I, O1], second Reactor[I, O2]) *And[I, O1, O2] {
	return &And[I, O1, O2]{first: first, second: second}
}

func (a *And[I, O1, O2]) React(r Reaction[I]) Reaction[struct{}] {
	if r.Kind == KindEvent {
		a.first.React(r)
		a.second.React(r)
		return Reaction[struct{}]{Kind: KindEvent, Event: r.Event}
	}
	return Continue[struct{}]()
}

// EitherTag discriminates which arm of an Either a value occupies.
type EitherTag uint8

const (
	// TagA marks an Either holding its A-typed value.
	TagA EitherTag = iota
	// TagB marks an Either holding its B-typed value.
	TagB
)

// Either is the two-armed tag Or's input routes on, matching test_or.rs's
// Either::A(x)/Either::B(y) (Go has no payload-carrying enum, so this is
// a tagged struct instead, the same adaptation Reaction[T] makes).
type Either[A, B any] struct {
	Tag EitherTag
	A   A
	B   B
}

// LeftEither builds an Either holding an A-typed value.
func LeftEither[A, B any](a A) Either[A, B] {
	return Either[A, B]{Tag: TagA, A: a}
}

// RightEither builds an Either holding a B-typed value.
func RightEither[A, B any](b B) Either[A, B] {
	return Either[A, B]{Tag: TagB, B: b}
}

// Or is a value-routing combinator: Input is a two-armed Either[A, B],
// Output is the common output type of both arms. Matching spec.md §4.E's
// Or(F, S) exactly: a Value(A(x)) routes to first, a Value(B(y)) routes
// to second, an Event is delivered to both arms (so either's internal
// evented state can observe it) and passed onward unconsumed, and a
// Continue reports Continue without touching either arm.
type Or[A, B, O any] struct {
	first  Reactor[A, O]
	second Reactor[B, O]
}

// NewOr builds an Or combinator from two reactors sharing an output type
// but taking the two distinct arm types of an Either[A, B].
func NewOr[A, B, O any](first Reactor[A, O], second Reactor[B, O]) *Or[A, B, O] {
	return &Or[A, B, O]{first: first, second: second}
}

func (o *Or[A, B, O]) React(r Reaction[Either[A, B]]) Reaction[O] {
	switch r.Kind {
	case KindEvent:
		o.first.React(Reaction[A]{Kind: KindEvent, Event: r.Event})
		o.second.React(Reaction[B]{Kind: KindEvent, Event: r.Event})
		return Reaction[O]{Kind: KindEvent, Event: r.Event}
	case KindValue:
		if r.Value.Tag == TagA {
			return o.first.React(Value(r.Value.A))
		}
		return o.second.React(Value(r.Value.B))
	default:
		return Continue[O]()
	}
}

// Map transforms a Reactor's Value output with callback, passing Event and
// Continue reactions through unchanged. Grounded on combinators.rs's Map.
type Map[I, S, O any] struct {
	source   Reactor[I, S]
	callback func(S) O
}

// NewMap builds a Map combinator.
func NewMap[I, S, O any](source Reactor[I, S], callback func(S) O) *Map[I, S, O] {
	return &Map[I, S, O]{source: source, callback: callback}
}

func (m *Map[I, S, O]) React(r Reaction[I]) Reaction[O] {
	out := m.source.React(r)
	switch out.Kind {
	case KindValue:
		return Value(m.callback(out.Value))
	case KindEvent:
		return Reaction[O]{Kind: KindEvent, Event: out.Event}
	default:
		return Continue[O]()
	}
}

// AndThen runs callback for its side effect whenever source produces a
// Value, forwarding the original Value onward. Grounded on
// combinators.rs's Callback (and_then in the Reactive trait).
type AndThen[I, O any] struct {
	source   Reactor[I, O]
	callback func(O)
}

// NewAndThen builds an AndThen combinator.
func NewAndThen[I, O any](source Reactor[I, O], callback func(O)) *AndThen[I, O] {
	return &AndThen[I, O]{source: source, callback: callback}
}

func (c *AndThen[I, O]) React(r Reaction[I]) Reaction[O] {
	out := c.source.React(r)
	if out.Kind == KindValue {
		c.callback(out.Value)
	}
	return out
}

// Consume is an identity Reactor: it forwards every Reaction unchanged.
// Useful as a chain terminator (the last reactor in a chain otherwise
// never has React invoked on its output) or as a test probe. Grounded on
// original_source/src/reactor/consumers.rs's Consume.
type Consume[T any] struct{}

// NewConsume builds a Consume passthrough reactor.
func NewConsume[T any]() Consume[T] { return Consume[T]{} }

func (Consume[T]) React(r Reaction[T]) Reaction[T] { return r }
