package system

import "sync/atomic"

// lifecycleState mirrors the teacher's state.go FastState: a lock-free CAS
// state machine for the engine's run state, trimmed to the three states
// this engine's simpler lifecycle needs (the teacher's loop also tracks a
// Sleeping state distinct from Running and a Terminating-vs-Terminated
// split that matter for its microtask scheduler; this engine's poll loop
// has no such intermediate states).
type lifecycleState uint32

const (
	stateAwake lifecycleState = iota
	stateRunning
	stateTerminated
)

// lifecycle is a lock-free state machine with the teacher's CAS-based
// transition style (TryTransition), grounded on state.go's FastState.
type lifecycle struct {
	v atomic.Uint32
}

func newLifecycle() *lifecycle {
	l := &lifecycle{}
	l.v.Store(uint32(stateAwake))
	return l
}

func (l *lifecycle) load() lifecycleState {
	return lifecycleState(l.v.Load())
}

func (l *lifecycle) tryTransition(from, to lifecycleState) bool {
	return l.v.CompareAndSwap(uint32(from), uint32(to))
}
