//go:build linux

package selector

import (
	"sync"

	"golang.org/x/sys/unix"
)

// epollSelector wraps an epoll instance, grounded on the teacher's
// poller_linux.go FastPoller. Unlike FastPoller's direct fd-indexed array
// (which assumes fd and registration identity are the same thing), this
// selector stores the caller's Token in EpollEvent.Fd (epoll's user-data
// word is a union with the real fd, so it can carry any uint32 the caller
// wants) and keeps its own fd->token map for Deregister/Reregister.
type epollSelector struct {
	epfd int

	mu     sync.Mutex
	tokens map[int]uint64
}

// New creates a Linux epoll-backed Selector.
func New() (Selector, error) {
	fd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}
	return &epollSelector{epfd: fd, tokens: make(map[int]uint64)}, nil
}

func interestToEpoll(i Interest) uint32 {
	// EPOLLET makes every registration edge-triggered, matching
	// original_source/src/system.rs's PollOpt::edge() on every
	// register/reregister call (system.rs:58,88,101): the engine must
	// observe each readiness transition exactly once, not keep
	// re-delivering it every poll while the socket stays readable.
	e := uint32(unix.EPOLLET)
	if i&Readable != 0 {
		e |= unix.EPOLLIN
	}
	if i&Writable != 0 {
		e |= unix.EPOLLOUT
	}
	return e
}

func (s *epollSelector) Register(fd int, token uint64, interest Interest) error {
	ev := unix.EpollEvent{Events: interestToEpoll(interest), Fd: int32(token)}
	if err := unix.EpollCtl(s.epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		return err
	}
	s.mu.Lock()
	s.tokens[fd] = token
	s.mu.Unlock()
	return nil
}

func (s *epollSelector) Reregister(fd int, token uint64, interest Interest) error {
	ev := unix.EpollEvent{Events: interestToEpoll(interest), Fd: int32(token)}
	if err := unix.EpollCtl(s.epfd, unix.EPOLL_CTL_MOD, fd, &ev); err != nil {
		return err
	}
	s.mu.Lock()
	s.tokens[fd] = token
	s.mu.Unlock()
	return nil
}

func (s *epollSelector) Deregister(fd int) error {
	err := unix.EpollCtl(s.epfd, unix.EPOLL_CTL_DEL, fd, nil)
	s.mu.Lock()
	delete(s.tokens, fd)
	s.mu.Unlock()
	return err
}

func (s *epollSelector) Poll(dst []Event, timeoutMs int) ([]Event, error) {
	var buf [256]unix.EpollEvent
	n, err := unix.EpollWait(s.epfd, buf[:], timeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return dst, nil
		}
		return dst, err
	}
	for i := 0; i < n; i++ {
		raw := buf[i]
		dst = append(dst, Event{
			Token:    uint64(uint32(raw.Fd)),
			Readable: raw.Events&unix.EPOLLIN != 0,
			Writable: raw.Events&unix.EPOLLOUT != 0,
			Error:    raw.Events&unix.EPOLLERR != 0,
			Hangup:   raw.Events&unix.EPOLLHUP != 0,
		})
	}
	return dst, nil
}

func (s *epollSelector) Close() error {
	return unix.Close(s.epfd)
}
