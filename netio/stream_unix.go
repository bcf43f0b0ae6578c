//go:build linux || darwin

package netio

import (
	"errors"

	"golang.org/x/sys/unix"

	sonr "github.com/sonr-go/sonr"
	"github.com/sonr-go/sonr/internal/selector"
	"github.com/sonr-go/sonr/sonrerr"
	"github.com/sonr-go/sonr/system"
)

// Stream is component G: a Reactor wrapping a single non-blocking
// connection fd, grounded on original_source/src/net/stream.rs's
// Stream<T>. It performs no internal buffering; Read/Write call straight
// through to the raw socket, surfacing sonrerr.ErrWouldBlock and
// clearing the corresponding readiness latch exactly as Stream<T>'s
// Read/Write impls do via EventedReactor.
type Stream struct {
	handle *sonr.EventedHandle[int]
}

// NewStreamFromFd wraps an already-connected, already-non-blocking fd
// (typically netio.Accepted.Fd, or the fd returned by DialTCP/DialUnix)
// and registers it for both readable and writable interest, matching
// Stream::new's Ready::readable() | Ready::writable().
func NewStreamFromFd(engine *system.Engine, fd int) (*Stream, error) {
	handle, err := sonr.NewEventedHandle[int](engine, fd, fd, selector.Readable|selector.Writable)
	if err != nil {
		return nil, err
	}
	return &Stream{handle: handle}, nil
}

// DialTCP opens a non-blocking TCP connection and registers it with
// engine. Completion of the connect is observed as write-readiness on
// the returned Stream, the conventional non-blocking-connect pattern.
func DialTCP(engine *system.Engine, addr string) (*Stream, error) {
	sa, domain, err := sockaddrTCP(addr)
	if err != nil {
		return nil, err
	}
	fd, err := connectOnce(domain, sa)
	if err != nil {
		return nil, err
	}
	return NewStreamFromFd(engine, fd)
}

// DialUnix opens a non-blocking connection to a Unix domain socket.
func DialUnix(engine *system.Engine, path string) (*Stream, error) {
	fd, err := connectOnce(unix.AF_UNIX, sockaddrUnix(path))
	if err != nil {
		return nil, err
	}
	return NewStreamFromFd(engine, fd)
}

// Token returns the stream's registration token.
func (s *Stream) Token() system.Token { return s.handle.Token() }

// Readable reports the stream's latched read-readiness, matching
// Stream::readable.
func (s *Stream) Readable() bool { return s.handle.IsReadable() }

// Writable reports the stream's latched write-readiness, matching
// Stream::writable.
func (s *Stream) Writable() bool { return s.handle.IsWritable() }

// Close deregisters and closes the underlying socket.
func (s *Stream) Close() error {
	s.handle.Close()
	return unix.Close(s.handle.Inner())
}

// Read performs a single non-blocking read(2). A WouldBlock result
// clears the readable latch and reregisters; an EOF or any other read
// error clears both latches and is reported as a
// sonrerr.ConnectionRemovedError, matching the supplemented
// ConnectionRemoved behavior in SPEC_FULL.md's listener/stream section.
func (s *Stream) Read(buf []byte) (int, error) {
	n, err := unix.Read(s.handle.Inner(), buf)
	if err != nil {
		if wouldBlock(err) {
			_ = s.handle.MarkWouldBlock(true)
			return 0, sonrerr.ErrWouldBlock
		}
		s.handle.MarkFailed()
		return 0, &sonrerr.ConnectionRemovedError{Token: uint64(s.handle.Token()), Cause: err}
	}
	if n == 0 {
		s.handle.MarkFailed()
		return 0, &sonrerr.ConnectionRemovedError{Token: uint64(s.handle.Token())}
	}
	return n, nil
}

// Write performs a single non-blocking write(2). A WouldBlock result
// clears the writable latch and reregisters; EPIPE or ECONNRESET clears
// both latches and is reported as a sonrerr.ConnectionRemovedError; any
// other error is returned unchanged and leaves the latches as they are.
func (s *Stream) Write(buf []byte) (int, error) {
	n, err := unix.Write(s.handle.Inner(), buf)
	if err != nil {
		if wouldBlock(err) {
			_ = s.handle.MarkWouldBlock(false)
			return 0, sonrerr.ErrWouldBlock
		}
		if errors.Is(err, unix.EPIPE) || errors.Is(err, unix.ECONNRESET) {
			s.handle.MarkFailed()
			return 0, &sonrerr.ConnectionRemovedError{Token: uint64(s.handle.Token()), Cause: err}
		}
		return 0, err
	}
	return n, nil
}

// React implements sonr.Reactor[system.Event, StreamSignal]: an Event
// matching this stream's token latches whichever interests it reports
// and yields a Value, matching Stream<T>'s react impl in stream.rs,
// which signals "readiness changed, go try Read/Write again". An Error
// or Hangup flag on the event upgrades that Value into a
// ConnectionRemoved signal instead, per SPEC_FULL.md's supplemented
// connection-removed behavior.
func (s *Stream) React(reaction sonr.Reaction[system.Event]) sonr.Reaction[StreamSignal] {
	if reaction.Kind != sonr.KindEvent {
		return sonr.Reaction[StreamSignal]{Kind: reaction.Kind}
	}
	if reaction.Event.Token != s.handle.Token() {
		return sonr.Reaction[StreamSignal]{Kind: sonr.KindEvent, Event: reaction.Event}
	}
	if reaction.Event.Error || reaction.Event.Hangup {
		s.handle.MarkFailed()
		return sonr.Value(StreamSignal{Removed: &sonrerr.ConnectionRemovedError{Token: uint64(s.handle.Token())}})
	}
	s.handle.Observe(reaction.Event)
	return sonr.Value(StreamSignal{})
}
