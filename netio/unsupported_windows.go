//go:build windows

package netio

import (
	"errors"

	sonr "github.com/sonr-go/sonr"
	"github.com/sonr-go/sonr/system"
)

// ErrUnsupportedPlatform is returned by every constructor in this file.
// netio's raw-socket path (golang.org/x/sys/unix) has no Windows
// equivalent wired into this rewrite yet: WSAPoll (internal/selector's
// Windows backend) reports readiness the same way epoll/kqueue do, but
// driving that readiness against a raw Windows SOCKET would need its own
// syscall surface (golang.org/x/sys/windows's Socket/Bind/Listen/Connect
// family) that nothing in the example corpus exercises end-to-end, so it
// is left as a documented gap rather than guessed at. See DESIGN.md.
var ErrUnsupportedPlatform = errors.New("netio: raw sockets not implemented on windows")

type ReactiveTCPListener struct{}

func BindTCP(engine *system.Engine, addr string) (*ReactiveTCPListener, error) {
	return nil, ErrUnsupportedPlatform
}

func (l *ReactiveTCPListener) Token() system.Token { return 0 }
func (l *ReactiveTCPListener) Close() error         { return nil }
func (l *ReactiveTCPListener) React(r sonr.Reaction[system.Event]) sonr.Reaction[Accepted] {
	return sonr.Continue[Accepted]()
}

type ReactiveUnixListener struct{}

func BindUnix(engine *system.Engine, path string) (*ReactiveUnixListener, error) {
	return nil, ErrUnsupportedPlatform
}

func (l *ReactiveUnixListener) Token() system.Token { return 0 }
func (l *ReactiveUnixListener) Close() error         { return nil }
func (l *ReactiveUnixListener) React(r sonr.Reaction[system.Event]) sonr.Reaction[Accepted] {
	return sonr.Continue[Accepted]()
}

type Stream struct{}

func NewStreamFromFd(engine *system.Engine, fd int) (*Stream, error) {
	return nil, ErrUnsupportedPlatform
}

func DialTCP(engine *system.Engine, addr string) (*Stream, error) {
	return nil, ErrUnsupportedPlatform
}

func DialUnix(engine *system.Engine, path string) (*Stream, error) {
	return nil, ErrUnsupportedPlatform
}

func (s *Stream) Token() system.Token { return 0 }
func (s *Stream) Readable() bool      { return false }
func (s *Stream) Writable() bool      { return false }
func (s *Stream) Close() error        { return nil }
func (s *Stream) Read(buf []byte) (int, error)  { return 0, ErrUnsupportedPlatform }
func (s *Stream) Write(buf []byte) (int, error) { return 0, ErrUnsupportedPlatform }
func (s *Stream) React(r sonr.Reaction[system.Event]) sonr.Reaction[StreamSignal] {
	return sonr.Continue[StreamSignal]()
}
