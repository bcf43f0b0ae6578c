// Package queue implements component H: a multi-producer, multi-consumer
// work queue with a push side driven by Reaction Values and a pop side
// driven by readiness, so that pushing from any goroutine wakes whichever
// engine owns a Dequeue.
//
// Grounded on original_source/src/sync/queue.rs's Queue/Dequeue/
// ReactiveQueue/ReactiveDeque. The original builds on crossbeam's
// lock-free Worker/Stealer deque; nothing in the example corpus supplies
// an equivalent lock-free structure for Go, so the shared backing store
// here is a single mutex-guarded slice instead (documented in
// DESIGN.md as the one deliberate stdlib-only concern in this package).
// The externally visible contract — Push wakes every Dequeue, a Dequeue
// reacts to that wake by stealing until empty — is preserved exactly.
package queue
