package crank

import (
	"reflect"

	"github.com/crankworks/crank/hub"
)

// resourceCell holds one singleton value behind a borrow flag. The value
// is stored through a pointer so borrows can hand out *T without copying.
type resourceCell struct {
	ptr    reflect.Value
	borrow hub.BorrowFlag
	name   string
}

// InsertResource stores value as the singleton for its dynamic type,
// replacing any previous one. Replacing a resource that is currently
// borrowed panics.
func (w *World[E]) InsertResource(value any) {
	rt := reflect.TypeOf(value)

	if cell, ok := w.resources[rt]; ok {
		cell.borrow.AcquireMut(cell.name)
		cell.ptr.Elem().Set(reflect.ValueOf(value))
		cell.borrow.ReleaseMut()
		return
	}

	ptr := reflect.New(rt)
	ptr.Elem().Set(reflect.ValueOf(value))

	w.resources[rt] = &resourceCell{ptr: ptr, name: rt.String()}
}

// Ref is a shared borrow of a resource. Close releases it; the pointer
// must not be written through or used after Close.
type Ref[T any] struct {
	value *T
	flag  *hub.BorrowFlag
}

func (r Ref[T]) Value() *T {
	return r.value
}

func (r Ref[T]) Close() {
	r.flag.Release()
}

// Mut is an exclusive borrow of a resource.
type Mut[T any] struct {
	value *T
	flag  *hub.BorrowFlag
}

func (m Mut[T]) Value() *T {
	return m.value
}

func (m Mut[T]) Close() {
	m.flag.ReleaseMut()
}

// Resource takes a shared borrow of the singleton of type T. Absence is a
// normal outcome and returns ok=false without acquiring anything.
func Resource[T any, E any](w *World[E]) (Ref[T], bool) {
	cell, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return Ref[T]{}, false
	}

	cell.borrow.Acquire(cell.name)
	return Ref[T]{value: cell.ptr.Interface().(*T), flag: &cell.borrow}, true
}

// ResourceMut takes an exclusive borrow of the singleton of type T. It
// panics if any borrow of that resource is outstanding.
func ResourceMut[T any, E any](w *World[E]) (Mut[T], bool) {
	cell, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return Mut[T]{}, false
	}

	cell.borrow.AcquireMut(cell.name)
	return Mut[T]{value: cell.ptr.Interface().(*T), flag: &cell.borrow}, true
}

// TakeResource removes the singleton of type T from the world and returns
// it by value. It returns ok=false if no such resource exists and panics
// if a borrow of it is outstanding.
func TakeResource[T any, E any](w *World[E]) (T, bool) {
	rt := reflect.TypeFor[T]()

	cell, ok := w.resources[rt]
	if !ok {
		var zero T
		return zero, false
	}

	// assert that nothing holds the resource before moving it out
	cell.borrow.AcquireMut(cell.name)
	cell.borrow.ReleaseMut()

	delete(w.resources, rt)

	return *cell.ptr.Interface().(*T), true
}
