//go:build linux

// Package wake gives a signal.Channel's receiver a real, OS-pollable file
// descriptor, so that the engine's selector (internal/selector) can treat
// cross-thread notifications exactly like socket readiness.
//
// Grounded on the teacher's wakeup_linux.go / wakeup_darwin.go /
// wakeup_windows.go, which solve the identical problem for its own loop's
// control wakeups.
package wake

import "golang.org/x/sys/unix"

// Pipe is a wake primitive: Notify() makes FD() become readable at least
// once; Drain() clears that readability.
type Pipe struct {
	fd int
}

// New creates a Linux eventfd-backed wake Pipe.
func New() (*Pipe, error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, err
	}
	return &Pipe{fd: fd}, nil
}

// FD returns the descriptor to register with the selector for readability.
func (p *Pipe) FD() int { return p.fd }

// Notify makes FD readable. Safe to call concurrently and repeatedly;
// coalesces into a single wakeup until Drain is called.
func (p *Pipe) Notify() error {
	var buf [8]byte
	buf[7] = 1
	_, err := unix.Write(p.fd, buf[:])
	if err == unix.EAGAIN {
		// counter would overflow: a wakeup is already pending
		return nil
	}
	return err
}

// Drain clears pending readability.
func (p *Pipe) Drain() error {
	var buf [8]byte
	for {
		_, err := unix.Read(p.fd, buf[:])
		if err != nil {
			if err == unix.EAGAIN {
				return nil
			}
			return err
		}
	}
}

// Close releases the underlying descriptor.
func (p *Pipe) Close() error {
	return unix.Close(p.fd)
}
