//go:build windows

package wake

import (
	"net"
	"time"

	"golang.org/x/sys/windows"
)

// Pipe is a wake primitive for the Windows WSAPoll-based selector (see
// internal/selector/selector_windows.go for why this engine uses WSAPoll
// rather than the teacher's IOCP design). Windows has no anonymous pipe
// that WSAPoll can watch, so the wakeup is a connected loopback TCP pair,
// the conventional Windows substitute for a Unix self-pipe.
type Pipe struct {
	ln     net.Listener
	writer net.Conn
	reader net.Conn
	fd     windows.Handle
}

// New creates a Windows loopback-socket-backed wake Pipe.
func New() (*Pipe, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	writer, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		ln.Close()
		return nil, err
	}

	reader, err := ln.Accept()
	if err != nil {
		ln.Close()
		writer.Close()
		return nil, err
	}

	var fd windows.Handle
	rawConn, err := reader.(*net.TCPConn).SyscallConn()
	if err != nil {
		ln.Close()
		writer.Close()
		reader.Close()
		return nil, err
	}
	if err := rawConn.Control(func(h uintptr) { fd = windows.Handle(h) }); err != nil {
		ln.Close()
		writer.Close()
		reader.Close()
		return nil, err
	}

	return &Pipe{ln: ln, writer: writer, reader: reader, fd: fd}, nil
}

// FD returns the socket handle to register with WSAPoll.
func (p *Pipe) FD() windows.Handle { return p.fd }

// Notify writes a byte to the loopback socket, making FD readable.
func (p *Pipe) Notify() error {
	_, err := p.writer.Write([]byte{1})
	return err
}

// Drain reads all pending bytes off the loopback socket.
func (p *Pipe) Drain() error {
	buf := make([]byte, 64)
	if err := p.reader.SetReadDeadline(time.Now()); err != nil {
		return err
	}
	for {
		_, err := p.reader.Read(buf)
		if err != nil {
			break
		}
	}
	return p.reader.SetReadDeadline(time.Time{})
}

// Close releases the loopback socket and its listener.
func (p *Pipe) Close() error {
	_ = p.ln.Close()
	_ = p.writer.Close()
	return p.reader.Close()
}
