package signal

import (
	"testing"

	"github.com/sonr-go/sonr/sonrerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendThenTryRecv(t *testing.T) {
	ch, err := New[int](Unbounded)
	require.NoError(t, err)
	defer ch.Close()

	sender := ch.Sender()
	require.NoError(t, sender.Send(42))

	v, err := ch.TryRecv()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestTryRecvEmpty(t *testing.T) {
	ch, err := New[int](Unbounded)
	require.NoError(t, err)
	defer ch.Close()
	_ = ch.Sender()

	_, err = ch.TryRecv()
	assert.ErrorIs(t, err, sonrerr.ErrChannelEmpty)
}

func TestBoundedChannelRejectsOverflow(t *testing.T) {
	ch, err := New[int](1)
	require.NoError(t, err)
	defer ch.Close()

	sender := ch.Sender()
	require.NoError(t, sender.Send(1))
	assert.ErrorIs(t, sender.Send(2), sonrerr.ErrWouldBlock)
}

func TestSendBlockingWaitsForSpace(t *testing.T) {
	ch, err := New[int](1)
	require.NoError(t, err)
	defer ch.Close()

	sender := ch.Sender()
	require.NoError(t, sender.Send(1))

	done := make(chan error, 1)
	go func() { done <- sender.SendBlocking(2) }()

	// The send above is blocked on the full queue until this TryRecv frees
	// a slot and signals the channel's condition variable.
	v, err := ch.TryRecv()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, <-done)

	v, err = ch.TryRecv()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestSenderCloseDisconnects(t *testing.T) {
	ch, err := New[int](Unbounded)
	require.NoError(t, err)
	defer ch.Close()

	sender := ch.Sender()
	sender.Close()

	_, err = ch.TryRecv()
	assert.ErrorIs(t, err, sonrerr.ErrChannelDisconnected)
}

func TestFDValidAfterSend(t *testing.T) {
	ch, err := New[int](Unbounded)
	require.NoError(t, err)
	defer ch.Close()

	sender := ch.Sender()
	require.NoError(t, sender.Send(1))
	assert.GreaterOrEqual(t, ch.FD(), 0)
}

func TestCloneSenderSharesQueue(t *testing.T) {
	ch, err := New[string](Unbounded)
	require.NoError(t, err)
	defer ch.Close()

	s1 := ch.Sender()
	s2 := s1.Clone()

	require.NoError(t, s1.Send("a"))
	require.NoError(t, s2.Send("b"))

	first, err := ch.TryRecv()
	require.NoError(t, err)
	assert.Equal(t, "a", first)

	second, err := ch.TryRecv()
	require.NoError(t, err)
	assert.Equal(t, "b", second)
}
