// Package sonr implements the readiness-reactor protocol at the center of
// this engine: the tri-state Reaction value, the Reactor contract,
// combinators over it, evented resource handles, and the top-level drive
// loop that ties a Reactor tree to a system.Engine.
//
// Grounded on original_source/src/reactor/mod.rs and combinators.rs. The
// Rust crate settled on this exact Event/Value/Continue shape after an
// earlier NoReaction/Value design (visible, commented out, in mod.rs);
// this rewrite adopts that later, unified shape directly, resolving the
// "unify the Reaction variants" item in spec.md's Open Questions.
package sonr

import "github.com/sonr-go/sonr/system"

// Kind discriminates which variant a Reaction holds.
type Kind uint8

const (
	// KindEvent carries a readiness transition from the engine for a
	// specific token. A Reactor not interested in that token should pass
	// it through unchanged.
	KindEvent Kind = iota
	// KindValue carries an output value produced by a Reactor.
	KindValue
	// KindContinue requests a Reactor do further unprompted work (e.g.
	// drain a buffer) without a new readiness Event having arrived.
	KindContinue
)

// Reaction is the tri-state value threaded through a Reactor chain.
// Go has no enum-with-payload, so this is a tagged struct instead of
// original_source's Reaction<T> enum.
type Reaction[T any] struct {
	Kind  Kind
	Event system.Event
	Value T
}

// Event constructs a KindEvent Reaction.
func Event[T any](ev system.Event) Reaction[T] {
	return Reaction[T]{Kind: KindEvent, Event: ev}
}

// Value constructs a KindValue Reaction.
func Value[T any](v T) Reaction[T] {
	return Reaction[T]{Kind: KindValue, Value: v}
}

// Continue constructs a KindContinue Reaction.
func Continue[T any]() Reaction[T] {
	return Reaction[T]{Kind: KindContinue}
}

// Reactor is the core contract: given a Reaction carrying an Input, it
// produces a Reaction carrying an Output.
//
// React is called repeatedly with KindContinue until it itself returns
// KindContinue, draining whatever work became available from a single
// KindEvent delivery — the edge-triggered obligation spec.md §4.C and §9
// describe, since the underlying OS readiness notification will not refire
// until the socket's state changes again.
type Reactor[I, O any] interface {
	React(Reaction[I]) Reaction[O]
}

// ReactorFunc adapts a plain function to the Reactor interface.
type ReactorFunc[I, O any] func(Reaction[I]) Reaction[O]

func (f ReactorFunc[I, O]) React(r Reaction[I]) Reaction[O] { return f(r) }
