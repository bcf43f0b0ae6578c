package sonr

import (
	"testing"

	"github.com/sonr-go/sonr/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunDrivesMonoToStop exercises spec.md §8 scenario 2 ("Generator
// drives to stop"): a Mono(7)-rooted graph is driven entirely through
// Run, proving Mono's self-trigger registration actually fires inside
// the real engine rather than requiring synchronous inline emission.
func TestRunDrivesMonoToStop(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	mono, err := NewMono(engine, uint8(7))
	require.NoError(t, err)
	defer mono.Close()

	sender := engine.ControlSender()
	var seen uint8
	var calls int
	root := NewAndThen[system.Event, uint8](mono, func(v uint8) {
		seen = v
		calls++
		_ = sender.Send(system.Stop)
	})

	require.NoError(t, Run[uint8](engine, root))
	assert.Equal(t, uint8(7), seen)
	assert.Equal(t, 1, calls)
}
