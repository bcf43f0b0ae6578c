//go:build linux || darwin

package netio

import (
	"errors"
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"

	"github.com/sonr-go/sonr/sonrerr"
)

// wouldBlock reports whether err is the non-blocking "nothing ready yet"
// signal from a raw socket syscall.
func wouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EINPROGRESS)
}

// sockaddrTCP resolves addr ("host:port") into a unix.Sockaddr, picking
// SockaddrInet4 or SockaddrInet6 depending on the resolved family. Uses
// net.ResolveTCPAddr purely for name/address parsing; no descriptor is
// opened by net itself.
func sockaddrTCP(addr string) (unix.Sockaddr, int, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, 0, &sonrerr.AddrParseError{Raw: addr, Cause: err}
	}
	if ip4 := tcpAddr.IP.To4(); ip4 != nil {
		sa := &unix.SockaddrInet4{Port: tcpAddr.Port}
		copy(sa.Addr[:], ip4)
		return sa, unix.AF_INET, nil
	}
	ip6 := tcpAddr.IP.To16()
	if ip6 == nil {
		return nil, 0, &sonrerr.AddrParseError{Raw: addr, Cause: fmt.Errorf("unresolvable address family")}
	}
	sa := &unix.SockaddrInet6{Port: tcpAddr.Port}
	copy(sa.Addr[:], ip6)
	return sa, unix.AF_INET6, nil
}

func sockaddrUnix(path string) unix.Sockaddr {
	return &unix.SockaddrUnix{Name: path}
}

// newStreamSocket opens a non-blocking TCP or Unix-domain stream socket.
func newStreamSocket(domain int) (int, error) {
	fd, err := unix.Socket(domain, unix.SOCK_STREAM, 0)
	if err != nil {
		return -1, err
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}
	return fd, nil
}

// bindListenTCP opens, configures (SO_REUSEADDR, SO_REUSEPORT where
// available), binds, and listens on a TCP socket, matching
// original_source/src/server/listeners.rs's tcp_listener with a backlog
// of 4096.
func bindListenTCP(addr string) (int, error) {
	sa, domain, err := sockaddrTCP(addr)
	if err != nil {
		return -1, err
	}
	fd, err := newStreamSocket(domain)
	if err != nil {
		return -1, err
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}
	// SO_REUSEPORT lets multiple engines on separate OS threads share one
	// listening address, matching the #[cfg(unix)] branch in
	// listeners.rs::tcp_listener.
	_ = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	if err := unix.Bind(fd, sa); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}
	const backlog = 4096
	if err := unix.Listen(fd, backlog); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}
	return fd, nil
}

// bindListenUnix opens, binds, and listens on a Unix domain socket at
// path, matching listeners.rs::uds_listener. A stale socket file from a
// previous, uncleanly terminated run is removed first, since bind(2)
// otherwise fails with EADDRINUSE on an orphaned path.
func bindListenUnix(path string) (int, error) {
	if fi, err := os.Stat(path); err == nil && fi.Mode()&os.ModeSocket != 0 {
		_ = os.Remove(path)
	}
	fd, err := newStreamSocket(unix.AF_UNIX)
	if err != nil {
		return -1, err
	}
	if err := unix.Bind(fd, sockaddrUnix(path)); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}
	const backlog = 4096
	if err := unix.Listen(fd, backlog); err != nil {
		_ = unix.Close(fd)
		return -1, err
	}
	return fd, nil
}

// acceptOnce performs a single non-blocking accept(2) attempt, returning
// sonrerr.ErrWouldBlock when nothing is pending.
func acceptOnce(listenFd int) (nfd int, sa unix.Sockaddr, err error) {
	nfd, sa, err = unix.Accept(listenFd)
	if err != nil {
		if wouldBlock(err) {
			return -1, nil, sonrerr.ErrWouldBlock
		}
		return -1, nil, err
	}
	if err := unix.SetNonblock(nfd, true); err != nil {
		_ = unix.Close(nfd)
		return -1, nil, err
	}
	return nfd, sa, nil
}

// connectOnce issues a non-blocking connect(2), treating EINPROGRESS (the
// expected outcome for a non-blocking connect) as success: completion is
// observed later via write-readiness on the returned fd.
func connectOnce(domain int, sa unix.Sockaddr) (int, error) {
	fd, err := newStreamSocket(domain)
	if err != nil {
		return -1, err
	}
	if err := unix.Connect(fd, sa); err != nil && !errors.Is(err, unix.EINPROGRESS) {
		_ = unix.Close(fd)
		return -1, err
	}
	return fd, nil
}

func sockaddrString(sa unix.Sockaddr) string {
	switch v := sa.(type) {
	case *unix.SockaddrInet4:
		ip := net.IP(v.Addr[:])
		return fmt.Sprintf("%s:%d", ip, v.Port)
	case *unix.SockaddrInet6:
		ip := net.IP(v.Addr[:])
		return fmt.Sprintf("[%s]:%d", ip, v.Port)
	case *unix.SockaddrUnix:
		return v.Name
	default:
		return ""
	}
}
