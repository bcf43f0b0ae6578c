// Package selector is the engine's OS readiness multiplexer: epoll on
// Linux, kqueue on Darwin/BSD, WSAPoll on Windows. spec.md treats the
// selector as an external black box; a concrete Go implementation has to
// supply one itself, since Go has no built-in analogue of the Rust mio
// crate the original system was built against.
//
// Grounded on the teacher's poller_linux.go / poller_darwin.go for the
// epoll/kqueue shape. See selector_windows.go for why Windows deviates to
// WSAPoll instead of the teacher's IOCP-based poller_windows.go.
//
// Unlike the teacher's FastPoller (which indexes callbacks by raw fd),
// this selector reports caller-chosen Token values distinct from the
// kernel fd: the epoll backend stores the token in epoll_event's
// user-data word, and the kqueue and WSAPoll backends map each fd to its
// token, which is what lets EventedHandle's Token differ from the
// socket's fd per spec.md's data model.
package selector

// Interest describes which readiness transitions a registration cares
// about.
type Interest uint8

const (
	Readable Interest = 1 << iota
	Writable
)

// Event reports a readiness transition for a single token.
type Event struct {
	Token    uint64
	Readable bool
	Writable bool
	Error    bool
	Hangup   bool
}

// Selector is the platform-specific readiness multiplexer contract
// implemented by selector_linux.go, selector_darwin.go, and
// selector_windows.go.
type Selector interface {
	// Register starts monitoring fd (or handle, widened to int on Unix and
	// to windows.Handle-compatible uintptr on Windows) for the given
	// Interest, tagged with token.
	Register(fd int, token uint64, interest Interest) error
	// Reregister updates the Interest for an already-registered fd.
	Reregister(fd int, token uint64, interest Interest) error
	// Deregister stops monitoring fd.
	Deregister(fd int) error
	// Poll blocks until at least one readiness event is available or
	// timeoutMs elapses (negative means block indefinitely), appending
	// events to dst and returning the extended slice.
	Poll(dst []Event, timeoutMs int) ([]Event, error)
	// Close releases the underlying OS handle.
	Close() error
}
