package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sonr "github.com/sonr-go/sonr"
	"github.com/sonr-go/sonr/signal"
	"github.com/sonr-go/sonr/system"
)

func TestDequeueStealsPushedValue(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	q := NewQueue[string](signal.Unbounded)
	dq, err := q.NewDequeue(engine)
	require.NoError(t, err)
	defer dq.Close()

	q.Push("hello")

	out := dq.React(sonr.Continue[system.Event]())
	assert.Equal(t, sonr.KindValue, out.Kind)
	assert.Equal(t, "hello", out.Value)

	assert.Equal(t, sonr.KindContinue, dq.React(sonr.Continue[system.Event]()).Kind)
}

func TestDequeueIgnoresForeignToken(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	q := NewQueue[int](signal.Unbounded)
	dq, err := q.NewDequeue(engine)
	require.NoError(t, err)
	defer dq.Close()

	foreign := system.Event{Token: dq.Token() + 100, Readable: true}
	out := dq.React(sonr.Event[system.Event](foreign))
	assert.Equal(t, sonr.KindEvent, out.Kind)
	assert.Equal(t, foreign, out.Event)
}

func TestPushDeliversToOnlyOneDequeue(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	q := NewQueue[int](signal.Unbounded)
	a, err := q.NewDequeue(engine)
	require.NoError(t, err)
	defer a.Close()
	b, err := q.NewDequeue(engine)
	require.NoError(t, err)
	defer b.Close()

	q.Push(1)

	first := a.React(sonr.Continue[system.Event]())
	second := b.React(sonr.Continue[system.Event]())

	// Exactly one of the two dequeues observes the single pushed item;
	// the other finds the shared store already drained.
	values := 0
	if first.Kind == sonr.KindValue {
		values++
	}
	if second.Kind == sonr.KindValue {
		values++
	}
	assert.Equal(t, 1, values)
}

func TestReactivePushForwardsValuesIntoQueue(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	q := NewQueue[int](signal.Unbounded)
	dq, err := q.NewDequeue(engine)
	require.NoError(t, err)
	defer dq.Close()

	push := NewReactivePush[int](q)
	out := push.React(sonr.Value(42))
	assert.Equal(t, sonr.KindValue, out.Kind)

	stolen := dq.React(sonr.Continue[system.Event]())
	assert.Equal(t, sonr.KindValue, stolen.Kind)
	assert.Equal(t, 42, stolen.Value)
}
