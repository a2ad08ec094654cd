package crank

// System is a behavior registered on a World. Tick runs once per frame,
// Event once per submitted event. The two adapters below express behaviors
// that only care about one of the two roles, so the World can dispatch
// uniformly without knowing which kind it holds.
type System[E any] interface {
	Tick(w *World[E])
	Event(w *World[E], event E)
}

// TickerFunc adapts a per-frame function into a System that ignores
// events.
type TickerFunc[E any] func(*World[E])

func (f TickerFunc[E]) Tick(w *World[E]) {
	f(w)
}

func (f TickerFunc[E]) Event(*World[E], E) {}

// HandlerFunc adapts an event function into a System that does nothing on
// Tick.
type HandlerFunc[E any] func(*World[E], E)

func (f HandlerFunc[E]) Tick(*World[E]) {}

func (f HandlerFunc[E]) Event(w *World[E], event E) {
	f(w, event)
}
