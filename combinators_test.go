package sonr

import (
	"fmt"
	"testing"

	"github.com/sonr-go/sonr/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonoYieldsOnceThenContinues(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	m, err := NewMono(engine, 7)
	require.NoError(t, err)
	defer m.Close()

	first := m.React(Continue[system.Event]())
	assert.Equal(t, KindValue, first.Kind)
	assert.Equal(t, 7, first.Value)

	second := m.React(Continue[system.Event]())
	assert.Equal(t, KindContinue, second.Kind)
}

func TestGeneratorDrainsInOrder(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	g, err := NewGenerator(engine, []int{1, 2, 3})
	require.NoError(t, err)
	defer g.Close()

	var got []int
	for i := 0; i < 4; i++ {
		out := g.React(Continue[system.Event]())
		if out.Kind != KindValue {
			break
		}
		got = append(got, out.Value)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	assert.Equal(t, KindContinue, g.React(Continue[system.Event]()).Kind)
}

func TestConsumeForwardsUnchanged(t *testing.T) {
	c := NewConsume[int]()
	out := c.React(Value(5))
	assert.Equal(t, KindValue, out.Kind)
	assert.Equal(t, 5, out.Value)
}

func TestMapTransformsValue(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	g, err := NewGenerator(engine, []int{1, 2})
	require.NoError(t, err)
	defer g.Close()

	m := NewMap[system.Event, int, string](g, func(i int) string {
		if i == 1 {
			return "one"
		}
		return "other"
	})

	out := m.React(Continue[system.Event]())
	assert.Equal(t, KindValue, out.Kind)
	assert.Equal(t, "one", out.Value)
}

func TestAndThenRunsSideEffectOnValue(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	g, err := NewGenerator(engine, []int{42})
	require.NoError(t, err)
	defer g.Close()

	var seen int
	c := NewAndThen[system.Event, int](g, func(v int) { seen = v })

	out := c.React(Continue[system.Event]())
	assert.Equal(t, KindValue, out.Kind)
	assert.Equal(t, 42, seen)
}

func TestChainForwardsValuesToDownstream(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	g, err := NewGenerator(engine, []int{1, 2, 3})
	require.NoError(t, err)
	defer g.Close()

	var sum int
	sink := NewAndThen[int, int](NewConsume[int](), func(v int) { sum += v })
	chain := NewChain[system.Event, int, int](g, sink)

	out := chain.React(Continue[system.Event]())
	assert.Equal(t, KindContinue, out.Kind)
	assert.Equal(t, 6, sum)
}

// TestOrCombinatorRoutesByArm is grounded on
// original_source/tests/test_or.rs: a Mono(2) feeds a tagging Map into
// Or(int_consumer, string_consumer); 2 tags as the B arm, so the string
// consumer's branch runs, and the Map chained after the Or sends Stop
// for the value it yields, matching the Rust test's
// system_sig.send(SystemEvent::Stop) inside the chained map closure.
func TestOrCombinatorRoutesByArm(t *testing.T) {
	engine, err := system.New()
	require.NoError(t, err)
	defer engine.Shutdown()

	mono, err := NewMono(engine, uint32(2))
	require.NoError(t, err)
	defer mono.Close()

	tagged := NewMap[system.Event, uint32, Either[uint32, string]](mono, func(v uint32) Either[uint32, string] {
		if v == 1 {
			return LeftEither[uint32, string](v)
		}
		return RightEither[uint32, string](fmt.Sprintf("%d", v))
	})

	intConsumer := NewConsume[uint32]()
	stringConsumer := NewMap[string, string, uint32](NewConsume[string](), func(string) uint32 { return 0 })
	or := NewOr[uint32, string, uint32](intConsumer, stringConsumer)

	sender := engine.ControlSender()
	var testComplete bool
	routed := NewMap[Either[uint32, string], uint32, struct{}](or, func(uint32) struct{} {
		_ = sender.Send(system.Stop)
		testComplete = true
		return struct{}{}
	})

	root := NewChain[system.Event, Either[uint32, string], struct{}](tagged, routed)

	require.NoError(t, Run[struct{}](engine, root))
	assert.True(t, testComplete)
}

func TestAndDrivesBothArmsOnEvent(t *testing.T) {
	var firstSeen, secondSeen bool
	first := ReactorFunc[system.Event, int](func(r Reaction[system.Event]) Reaction[int] {
		if r.Kind == KindEvent {
			firstSeen = true
		}
		return Continue[int]()
	})
	second := ReactorFunc[system.Event, string](func(r Reaction[system.Event]) Reaction[string] {
		if r.Kind == KindEvent {
			secondSeen = true
		}
		return Continue[string]()
	})
	and := NewAnd[system.Event, int, string](first, second)

	out := and.React(Event[system.Event](system.Event{Token: 3}))
	assert.Equal(t, KindEvent, out.Kind)
	assert.True(t, firstSeen)
	assert.True(t, secondSeen)
}
