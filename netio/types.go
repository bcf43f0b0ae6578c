package netio

import "github.com/sonr-go/sonr/sonrerr"

// Accepted is the Value produced by a listener reactor: the accepted
// connection's raw, already-non-blocking file descriptor and the
// formatted remote address, matching the (TcpStream, SocketAddr) pair
// original_source/src/net/tcp.rs's ReactiveTcpListener::react returns.
// Callers typically wrap Fd in a Stream via NewStreamFromFd.
type Accepted struct {
	Fd   int
	Addr string
}

// StreamSignal is the Value a Stream reactor produces: either a plain
// "readiness changed, go try Read/Write again" signal (the zero value),
// or a Removed cause when the engine's own event reported the socket as
// hung up or errored, upgrading the fatal-I/O path spec.md §7 describes
// into a concrete value rather than a side channel.
type StreamSignal struct {
	Removed *sonrerr.ConnectionRemovedError
}
