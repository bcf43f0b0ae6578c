//go:build darwin

package wake

import "golang.org/x/sys/unix"

// Pipe is a self-pipe wake primitive, grounded on the teacher's
// wakeup_darwin.go (Darwin has no eventfd, so a non-blocking pipe pair is
// used instead).
type Pipe struct {
	readFD  int
	writeFD int
}

// New creates a Darwin self-pipe-backed wake Pipe.
func New() (*Pipe, error) {
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		return nil, err
	}
	for _, fd := range fds {
		unix.CloseOnExec(fd)
		if err := unix.SetNonblock(fd, true); err != nil {
			unix.Close(fds[0])
			unix.Close(fds[1])
			return nil, err
		}
	}
	return &Pipe{readFD: fds[0], writeFD: fds[1]}, nil
}

// FD returns the read end to register with the selector.
func (p *Pipe) FD() int { return p.readFD }

// Notify writes a single byte to the pipe, making FD readable.
func (p *Pipe) Notify() error {
	_, err := unix.Write(p.writeFD, []byte{1})
	if err == unix.EAGAIN {
		// pipe buffer already holds a pending wakeup byte
		return nil
	}
	return err
}

// Drain reads all pending bytes off the pipe.
func (p *Pipe) Drain() error {
	var buf [64]byte
	for {
		_, err := unix.Read(p.readFD, buf[:])
		if err != nil {
			if err == unix.EAGAIN {
				return nil
			}
			return err
		}
	}
}

// Close releases both pipe ends.
func (p *Pipe) Close() error {
	err1 := unix.Close(p.readFD)
	err2 := unix.Close(p.writeFD)
	if err1 != nil {
		return err1
	}
	return err2
}
