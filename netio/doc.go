// Package netio implements components F and G of the readiness engine:
// listener reactors that yield accepted connections as Values, and a
// Stream reactor that latches read/write readiness for a single
// connection without buffering.
//
// Grounded on original_source/src/net/tcp.rs, uds.rs, stream.rs, and
// server/listeners.rs. Sockets are opened and driven with raw,
// non-blocking syscalls from golang.org/x/sys/unix rather than Go's net
// package: net's Conn/Listener types register their file descriptors
// with the Go runtime's own internal netpoller, which would race this
// package's independent EventedHandle registration on the same fd and
// swallow the true EAGAIN/EWOULDBLOCK this engine's edge-triggered
// retry logic depends on observing directly.
package netio
