//go:build linux || darwin

package netio

import (
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sonr "github.com/sonr-go/sonr"
	"github.com/sonr-go/sonr/system"
)

func TestUnixListenerBindsAndReportsWouldBlock(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	sockPath := filepath.Join(t.TempDir(), "sonr.sock")
	listener, err := BindUnix(engine, sockPath)
	require.NoError(t, err)
	defer listener.Close()

	out := listener.React(sonr.Continue[system.Event]())
	assert.Equal(t, sonr.KindContinue, out.Kind)
}

func TestUnixListenerRebindRemovesStaleSocketFile(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	sockPath := filepath.Join(t.TempDir(), "sonr.sock")
	first, err := BindUnix(engine, sockPath)
	require.NoError(t, err)
	firstFd := first.handle.Inner()
	require.NoError(t, unix.Close(firstFd))

	second, err := BindUnix(engine, sockPath)
	require.NoError(t, err)
	defer second.Close()
}
