//go:build linux || darwin

package netio

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/sonr-go/sonr/internal/selector"
	"github.com/sonr-go/sonr/sonrerr"
	"github.com/sonr-go/sonr/sonrlog"
	"github.com/sonr-go/sonr/system"

	sonr "github.com/sonr-go/sonr"
)

// ReactiveTCPListener is component F: a listener reactor yielding
// Accepted connections, grounded on
// original_source/src/net/tcp.rs's ReactiveTcpListener.
type ReactiveTCPListener struct {
	handle *sonr.EventedHandle[int]
	log    sonrlog.Logger
}

// BindTCP opens, configures, and registers a listening TCP socket on
// engine, matching ReactiveTcpListener::bind.
func BindTCP(engine *system.Engine, addr string) (*ReactiveTCPListener, error) {
	fd, err := bindListenTCP(addr)
	if err != nil {
		return nil, err
	}
	handle, err := sonr.NewEventedHandle[int](engine, fd, fd, selector.Readable)
	if err != nil {
		return nil, err
	}
	return &ReactiveTCPListener{handle: handle, log: engine.Logger()}, nil
}

// Token returns the listener's registration token.
func (l *ReactiveTCPListener) Token() system.Token { return l.handle.Token() }

// Close deregisters and closes the listening socket.
func (l *ReactiveTCPListener) Close() error {
	l.handle.Close()
	return unix.Close(l.handle.Inner())
}

// React implements sonr.Reactor[system.Event, Accepted]. On the
// listener's own token (event or a continued drain), it attempts a
// single accept(2); a WouldBlock clears the latch and reregisters per
// the edge-triggered retry-once contract, exactly mirroring
// ReactiveTcpListener::react's match on the accept() result.
func (l *ReactiveTCPListener) React(reaction sonr.Reaction[system.Event]) sonr.Reaction[Accepted] {
	switch reaction.Kind {
	case sonr.KindEvent:
		if reaction.Event.Token != l.handle.Token() {
			return sonr.Reaction[Accepted]{Kind: sonr.KindEvent, Event: reaction.Event}
		}
		l.handle.Observe(reaction.Event)
		return l.accept()
	case sonr.KindContinue:
		return l.accept()
	default:
		return sonr.Continue[Accepted]()
	}
}

func (l *ReactiveTCPListener) accept() sonr.Reaction[Accepted] {
	nfd, sa, err := acceptOnce(l.handle.Inner())
	if err != nil {
		if errors.Is(err, sonrerr.ErrWouldBlock) {
			_ = l.handle.MarkWouldBlock(true)
			return sonr.Continue[Accepted]()
		}
		l.log.Err().Err(err).Log("accept failed")
		return sonr.Continue[Accepted]()
	}
	return sonr.Value(Accepted{Fd: nfd, Addr: sockaddrString(sa)})
}

// ReactiveUnixListener is the Unix-domain-socket counterpart of
// ReactiveTCPListener, grounded on
// original_source/src/server/listeners.rs's uds_listener/UnixListener.
type ReactiveUnixListener struct {
	handle *sonr.EventedHandle[int]
	log    sonrlog.Logger
}

// BindUnix opens, binds, and registers a listening Unix domain socket.
func BindUnix(engine *system.Engine, path string) (*ReactiveUnixListener, error) {
	fd, err := bindListenUnix(path)
	if err != nil {
		return nil, err
	}
	handle, err := sonr.NewEventedHandle[int](engine, fd, fd, selector.Readable)
	if err != nil {
		return nil, err
	}
	return &ReactiveUnixListener{handle: handle, log: engine.Logger()}, nil
}

// Token returns the listener's registration token.
func (l *ReactiveUnixListener) Token() system.Token { return l.handle.Token() }

// Close deregisters and closes the listening socket.
func (l *ReactiveUnixListener) Close() error {
	l.handle.Close()
	return unix.Close(l.handle.Inner())
}

func (l *ReactiveUnixListener) React(reaction sonr.Reaction[system.Event]) sonr.Reaction[Accepted] {
	switch reaction.Kind {
	case sonr.KindEvent:
		if reaction.Event.Token != l.handle.Token() {
			return sonr.Reaction[Accepted]{Kind: sonr.KindEvent, Event: reaction.Event}
		}
		l.handle.Observe(reaction.Event)
		return l.accept()
	case sonr.KindContinue:
		return l.accept()
	default:
		return sonr.Continue[Accepted]()
	}
}

func (l *ReactiveUnixListener) accept() sonr.Reaction[Accepted] {
	nfd, sa, err := acceptOnce(l.handle.Inner())
	if err != nil {
		if errors.Is(err, sonrerr.ErrWouldBlock) {
			_ = l.handle.MarkWouldBlock(true)
			return sonr.Continue[Accepted]()
		}
		l.log.Err().Err(err).Log("accept failed")
		return sonr.Continue[Accepted]()
	}
	return sonr.Value(Accepted{Fd: nfd, Addr: sockaddrString(sa)})
}
