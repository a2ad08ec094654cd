package crank

import (
	"testing"

	"github.com/crankworks/crank/hub"
	"github.com/stretchr/testify/require"
)

type gameEvent int

const (
	eventNoop gameEvent = iota
	eventStop
)

type runState int

const (
	runStateRunning runState = iota
	runStateStopped
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

type Monster struct {
	Pos    Position
	Health Health
}

type Projectile struct {
	Pos Position
	Vel Velocity
}

func requirePanicsWithError(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()

		recovered := recover()
		require.NotNil(t, recovered, "expected a panic")

		err, ok := recovered.(error)
		require.True(t, ok, "expected the panic value to be an error, got %v", recovered)
		require.ErrorIs(t, err, target)
	}()

	fn()
}

func TestSpawn_CreatesTableLazily(t *testing.T) {
	world := NewWorld[gameEvent]()

	_, ok := TableOf[Monster](world)
	require.False(t, ok)

	id := Spawn(world, Monster{Pos: Position{X: 1}, Health: Health{Current: 10, Max: 10}})
	require.Equal(t, uint32(0), id.Row)

	tab, ok := TableOf[Monster](world)
	require.True(t, ok)
	require.Equal(t, 1, tab.Len())
}

func TestSpawn_RowIndicesInSpawnOrder(t *testing.T) {
	world := NewWorld[gameEvent]()

	for i := range 5 {
		id := Spawn(world, Monster{Health: Health{Current: i}})
		require.Equal(t, uint32(i), id.Row)
	}
}

func TestSpawn_ColumnLengthsMatchRowCount(t *testing.T) {
	world := NewWorld[gameEvent]()

	for i := range 10 {
		Spawn(world, Projectile{Pos: Position{X: float64(i)}})

		tab, ok := TableOf[Projectile](world)
		require.True(t, ok)
		require.Equal(t, i+1, tab.Len())

		for col := range tab.Columns() {
			require.Equal(t, tab.Len(), col.Len())
		}
	}
}

type wrapped struct {
	value int
}

func (wrapped) ComponentTypes() []*hub.ComponentType {
	return []*hub.ComponentType{hub.TypeOf[int]()}
}

func (w wrapped) AppendTo(tab *hub.Table) {
	tab.Append(w.value)
}

func TestSpawn_BundleDescriptor(t *testing.T) {
	world := NewWorld[gameEvent]()

	Spawn(world, wrapped{value: 3})
	Spawn(world, wrapped{value: 4})

	view := Query[int](world)
	defer view.Close()

	var values []int
	for v := range view.Items() {
		values = append(values, *v)
	}

	require.Equal(t, []int{3, 4}, values)
}

type badArchetype struct {
	hidden int
}

func TestSpawn_UnexportedFieldPanics(t *testing.T) {
	world := NewWorld[gameEvent]()

	require.Panics(t, func() {
		Spawn(world, badArchetype{})
	})
}

func TestTick_NoSystemsIsNoop(t *testing.T) {
	world := NewWorld[gameEvent]()

	require.NotPanics(t, func() {
		world.Tick()
		world.Submit(eventNoop)
	})
}

func TestTick_CounterScenario(t *testing.T) {
	world := NewWorld[gameEvent]().
		WithResource(uint32(0)).
		WithTicker(func(w *World[gameEvent]) {
			counter, ok := ResourceMut[uint32](w)
			require.True(t, ok)
			defer counter.Close()

			*counter.Value() += 1
		})

	for range 5 {
		world.Tick()
	}

	counter, ok := Resource[uint32](world)
	require.True(t, ok)
	defer counter.Close()

	require.Equal(t, uint32(5), *counter.Value())
}

func TestSubmit_StopScenario(t *testing.T) {
	world := NewWorld[gameEvent]().
		WithResource(runStateRunning).
		WithHandler(func(w *World[gameEvent], event gameEvent) {
			if event != eventStop {
				return
			}

			state, ok := ResourceMut[runState](w)
			require.True(t, ok)
			defer state.Close()

			*state.Value() = runStateStopped
		})

	world.Submit(eventNoop)

	state, _ := Resource[runState](world)
	require.Equal(t, runStateRunning, *state.Value())
	state.Close()

	world.Submit(eventStop)

	state, _ = Resource[runState](world)
	require.Equal(t, runStateStopped, *state.Value())
	state.Close()
}

type callLog struct {
	entries []string
}

func TestDispatch_RegistrationOrder(t *testing.T) {
	world := NewWorld[gameEvent]().WithResource(&callLog{})

	logCall := func(w *World[gameEvent], entry string) {
		log, _ := ResourceMut[*callLog](w)
		defer log.Close()

		(*log.Value()).entries = append((*log.Value()).entries, entry)
	}

	world.
		WithTicker(func(w *World[gameEvent]) { logCall(w, "tick-a") }).
		WithHandler(func(w *World[gameEvent], _ gameEvent) { logCall(w, "event-b") }).
		WithTicker(func(w *World[gameEvent]) { logCall(w, "tick-c") })

	world.Tick()
	world.Submit(eventNoop)
	world.Tick()

	log, _ := Resource[*callLog](world)
	defer log.Close()

	require.Equal(t,
		[]string{"tick-a", "tick-c", "event-b", "tick-a", "tick-c"},
		(*log.Value()).entries)
}

func TestDispatch_SystemsSeeCumulativeEffects(t *testing.T) {
	world := NewWorld[gameEvent]().
		WithResource(0).
		WithTicker(func(w *World[gameEvent]) {
			value, _ := ResourceMut[int](w)
			defer value.Close()

			*value.Value() = 7
		}).
		WithTicker(func(w *World[gameEvent]) {
			value, _ := ResourceMut[int](w)
			defer value.Close()

			// the first ticker of the same tick already ran
			require.Equal(t, 7, *value.Value())
			*value.Value() *= 2
		})

	world.Tick()

	value, _ := Resource[int](world)
	defer value.Close()
	require.Equal(t, 14, *value.Value())
}

func BenchmarkSpawn(b *testing.B) {
	world := NewWorld[gameEvent]()

	for i := 0; i < b.N; i++ {
		Spawn(world, Projectile{Pos: Position{X: 1}, Vel: Velocity{X: 2}})
	}
}
