package sonr

import (
	"testing"

	"github.com/sonr-go/sonr/signal"
	"github.com/sonr-go/sonr/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalReceiverDelivery(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	ch, err := signal.New[string](signal.Unbounded)
	require.NoError(t, err)
	defer ch.Close()

	receiver, err := NewSignalReceiver[string](engine, ch)
	require.NoError(t, err)
	defer receiver.Close()

	sender := ch.Sender()
	require.NoError(t, sender.Send("hello"))

	ev := system.Event{Token: receiver.Token(), Readable: true}
	out := receiver.React(Event[system.Event](ev))
	assert.Equal(t, KindValue, out.Kind)
	assert.Equal(t, "hello", out.Value)

	// No more queued values: next Continue should report Continue.
	assert.Equal(t, KindContinue, receiver.React(Continue[system.Event]()).Kind)
}

func TestSignalReceiverIgnoresForeignToken(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	ch, err := signal.New[int](signal.Unbounded)
	require.NoError(t, err)
	defer ch.Close()

	receiver, err := NewSignalReceiver[int](engine, ch)
	require.NoError(t, err)
	defer receiver.Close()

	foreign := system.Event{Token: receiver.Token() + 100, Readable: true}
	out := receiver.React(Event[system.Event](foreign))
	assert.Equal(t, KindEvent, out.Kind)
	assert.Equal(t, foreign, out.Event)
}
