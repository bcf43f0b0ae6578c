// Package sonr is a composable, readiness-driven reactor core: a small
// contract (Reaction/Reactor) for building I/O pipelines out of
// independently testable pieces, driven by a single-threaded engine
// (package system) wrapping the OS's native readiness multiplexer.
//
// A typical program initializes one system.Engine per OS thread, builds a
// tree of Reactors (listeners and streams from package netio, channels
// from package signal via NewSignalReceiver, work-stealing queues from
// package queue, fan-out from package broadcast, combined with Chain/And/
// Or/Map), and hands the root of that tree to Run.
package sonr
