package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(WithTokenCapacity(16))
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Shutdown() })
	return e
}

func TestControlTokenReservedAtInit(t *testing.T) {
	e := newTestEngine(t)
	// Token 0 is already occupied by the control channel; the next
	// reservation must be 1.
	tok, err := e.ReserveToken()
	require.NoError(t, err)
	assert.Equal(t, Token(1), tok)
}

func TestReserveAndFreeTokenRecycles(t *testing.T) {
	e := newTestEngine(t)
	tok, err := e.ReserveToken()
	require.NoError(t, err)

	e.FreeToken(tok)

	again, err := e.ReserveToken()
	require.NoError(t, err)
	assert.Equal(t, tok, again)
}

func TestStartTransitionsOnce(t *testing.T) {
	e := newTestEngine(t)
	assert.True(t, e.Start())
	assert.False(t, e.Start())
	assert.True(t, e.Running())
}

func TestControlSenderStopsNext(t *testing.T) {
	e := newTestEngine(t)
	sender := e.ControlSender()
	require.NoError(t, sender.Send(Stop))

	events, stop, err := e.Next(nil)
	require.NoError(t, err)
	assert.True(t, stop)
	assert.Empty(t, events)
}
