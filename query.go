package crank

import (
	"iter"

	"github.com/crankworks/crank/hub"
)

// View is the flattened result of a single-type query: one borrowed
// column per table whose schema includes C. Close releases the borrows;
// using the view afterwards is a defect.
type View[C any] struct {
	columns []viewColumn[C]
}

type viewColumn[C any] struct {
	items   []C
	release func()
}

// Query scans every table in the world and takes a shared borrow of each
// column holding C, silently skipping tables whose schema lacks C.
func Query[C any, E any](w *World[E]) *View[C] {
	return collect(w, hub.BorrowCol[C])
}

// QueryMut is the exclusive variant of Query. It panics if any live view
// already borrows one of the matched columns.
func QueryMut[C any, E any](w *World[E]) *View[C] {
	return collect(w, hub.BorrowColMut[C])
}

func collect[C any, E any](w *World[E], borrow func(*hub.Column) ([]C, func(), bool)) *View[C] {
	typ := hub.TypeOf[C]()

	view := &View[C]{}

	for _, tab := range w.tableOrder {
		if !tab.Contains(typ) {
			continue
		}

		col, ok := tab.ColumnFor(typ)
		if !ok {
			continue
		}

		items, release, ok := borrow(col)
		if !ok {
			continue
		}

		view.columns = append(view.columns, viewColumn[C]{items: items, release: release})
	}

	return view
}

// Items yields a pointer to every matched component: stable row order
// within one table, table creation order across archetypes.
func (v *View[C]) Items() iter.Seq[*C] {
	return func(yield func(*C) bool) {
		for _, col := range v.columns {
			for i := range col.items {
				if !yield(&col.items[i]) {
					return
				}
			}
		}
	}
}

// Count returns the number of matched components.
func (v *View[C]) Count() int {
	var n int
	for _, col := range v.columns {
		n += len(col.items)
	}
	return n
}

// Close releases every borrow the view holds.
func (v *View[C]) Close() {
	for _, col := range v.columns {
		col.release()
	}
	v.columns = nil
}

// View2 is a tuple query result. The two sequences are resolved
// independently over the same registry state: they are parallel, not
// joined. The i-th element of A and the i-th element of B belong to the
// same entity only when both components come from one shared archetype's
// table; tuple views spanning different archetypes must not be used where
// row alignment matters.
type View2[A, B any] struct {
	A *View[A]
	B *View[B]
}

// Query2 resolves a shared query for A and for B. For exclusive access to
// one side, compose Query and QueryMut directly instead.
func Query2[A, B any, E any](w *World[E]) *View2[A, B] {
	return &View2[A, B]{
		A: Query[A](w),
		B: Query[B](w),
	}
}

// Pairs zips the two sequences, stopping at the shorter one. See the
// View2 alignment caveat.
func (v *View2[A, B]) Pairs() iter.Seq2[*A, *B] {
	return func(yield func(*A, *B) bool) {
		next, stop := iter.Pull(v.B.Items())
		defer stop()

		for a := range v.A.Items() {
			b, ok := next()
			if !ok {
				return
			}

			if !yield(a, b) {
				return
			}
		}
	}
}

// Close releases both sides.
func (v *View2[A, B]) Close() {
	v.A.Close()
	v.B.Close()
}
