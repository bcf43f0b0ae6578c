package broadcast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sonr "github.com/sonr-go/sonr"
	"github.com/sonr-go/sonr/signal"
	"github.com/sonr-go/sonr/sonrerr"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := New[string](signal.Unbounded)

	a, err := b.Subscribe()
	require.NoError(t, err)
	defer a.Close()
	c, err := b.Subscribe()
	require.NoError(t, err)
	defer c.Close()

	b.Publish("hi")

	va, err := a.TryRecv()
	require.NoError(t, err)
	assert.Equal(t, "hi", va)

	vc, err := c.TryRecv()
	require.NoError(t, err)
	assert.Equal(t, "hi", vc)
}

func TestSubscriberAddedAfterPublishMissesEarlierValue(t *testing.T) {
	b := New[int](signal.Unbounded)
	b.Publish(1)

	sub, err := b.Subscribe()
	require.NoError(t, err)
	defer sub.Close()

	_, err = sub.TryRecv()
	assert.ErrorIs(t, err, sonrerr.ErrChannelEmpty)
}

func TestReactivePublishForwardsValues(t *testing.T) {
	b := New[int](signal.Unbounded)
	sub, err := b.Subscribe()
	require.NoError(t, err)
	defer sub.Close()

	r := NewReactivePublish[int](b)
	out := r.React(sonr.Value(5))
	assert.Equal(t, sonr.KindValue, out.Kind)

	v, err := sub.TryRecv()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}
