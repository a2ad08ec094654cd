package crank

import (
	"reflect"

	"github.com/crankworks/crank/hub"
)

// World owns every archetype table, every singleton resource and the
// ordered list of registered systems. E is the application's event type;
// every event submitted to the world is observed by every handler.
//
// A World is single-threaded: systems run to completion one after the
// other, and the only aliasing control is the dynamic borrow discipline on
// columns and resources.
type World[E any] struct {
	tables map[reflect.Type]*hub.Table

	// tables in creation order, so query iteration is deterministic
	tableOrder []*hub.Table

	archetypes map[reflect.Type]*archetype
	resources  map[reflect.Type]*resourceCell
	systems    []System[E]
}

func NewWorld[E any]() *World[E] {
	return &World[E]{
		tables:     map[reflect.Type]*hub.Table{},
		archetypes: map[reflect.Type]*archetype{},
		resources:  map[reflect.Type]*resourceCell{},
	}
}

// WithSystem registers a system. Registration order is dispatch order for
// both Tick and Submit.
func (w *World[E]) WithSystem(system System[E]) *World[E] {
	w.systems = append(w.systems, system)
	return w
}

// WithTicker registers a per-frame function that ignores events.
func (w *World[E]) WithTicker(fn func(*World[E])) *World[E] {
	return w.WithSystem(TickerFunc[E](fn))
}

// WithHandler registers an event function that does nothing on Tick.
func (w *World[E]) WithHandler(fn func(*World[E], E)) *World[E] {
	return w.WithSystem(HandlerFunc[E](fn))
}

// WithResource is InsertResource in builder form.
func (w *World[E]) WithResource(value any) *World[E] {
	w.InsertResource(value)
	return w
}

// Tick invokes every registered system's per-frame behavior once, in
// registration order. Each system sees the cumulative effect of the
// systems that ran before it in the same tick. A world with no systems
// ticks as a no-op.
func (w *World[E]) Tick() {
	for _, system := range w.systems {
		system.Tick(w)
	}
}

// Submit invokes every registered system's event behavior once, in
// registration order, passing the event read-only.
func (w *World[E]) Submit(event E) {
	for _, system := range w.systems {
		system.Event(w, event)
	}
}

// EntityId is the row index of a spawned entity within its archetype's
// table, tagged with the archetype type. It stays valid because entities
// are never deleted; it carries no generation counter.
type EntityId[T any] struct {
	Row uint32
}

// Spawn appends entity as one new row in its archetype's table, creating
// and registering the table on first use. The archetype's descriptor (see
// Bundle) determines the schema and the append sequence.
func Spawn[T any, E any](w *World[E], entity T) EntityId[T] {
	key := reflect.TypeFor[T]()

	arch := w.archetypeFor(key)

	tab, ok := w.tables[key]
	if !ok {
		tab = hub.NewTable(arch.types...)
		w.tables[key] = tab
		w.tableOrder = append(w.tableOrder, tab)
	}

	arch.append(tab, entity)

	return EntityId[T]{Row: uint32(tab.Len() - 1)}
}

// TableOf returns the archetype table for T, if one entity of T was ever
// spawned.
func TableOf[T any, E any](w *World[E]) (*hub.Table, bool) {
	tab, ok := w.tables[reflect.TypeFor[T]()]
	return tab, ok
}
