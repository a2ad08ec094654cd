package hub

import (
	"fmt"
	"reflect"
	"unsafe"
)

// AnyVec is a growable array for a single element type that is fixed at
// construction but unknown at compile time. Typed access goes through
// Downcast, which verifies the recorded identity on every call.
type AnyVec struct {
	typ *ComponentType

	// backing slice of typ.Type, kept addressable so elements can be set
	slice reflect.Value

	// base pointer of the backing array, refreshed on every realloc
	memory unsafe.Pointer

	len, cap int
}

// NewUninit returns an empty vector tagged with the eventual element type.
// No storage is allocated until the first Push.
func NewUninit(typ *ComponentType) *AnyVec {
	return &AnyVec{typ: typ}
}

// Type returns the identity the vector was constructed with.
func (v *AnyVec) Type() *ComponentType {
	return v.typ
}

func (v *AnyVec) Len() int {
	return v.len
}

func (v *AnyVec) Cap() int {
	return v.cap
}

// Push appends one value. The value's dynamic type must equal the
// vector's recorded element type; anything else is an internal invariant
// violation and panics.
func (v *AnyVec) Push(value any) {
	rv := reflect.ValueOf(value)
	if rv.Type() != v.typ.Type {
		panic(fmt.Errorf("%w: pushed %s into storage for %s", ErrTypeMismatch, rv.Type(), v.typ))
	}

	v.ensureSpace()

	v.len += 1
	v.slice.SetLen(v.len)
	v.slice.Index(v.len - 1).Set(rv)
}

func (v *AnyVec) ensureSpace() {
	if v.len < v.cap {
		return
	}

	// grow by doubling
	newCap := max(4, v.cap*2)

	grown := reflect.MakeSlice(reflect.SliceOf(v.typ.Type), v.len, newCap)
	if v.slice.IsValid() {
		reflect.Copy(grown, v.slice)
	}

	// keep the slice addressable so SetLen and Index(..).Set stay legal
	ptr := reflect.New(grown.Type())
	ptr.Elem().Set(grown)

	v.slice = ptr.Elem()
	v.memory = v.slice.UnsafePointer()
	v.cap = newCap
}

// Downcast returns the vector's elements as a typed slice without copying.
// It returns ok=false if T is not the vector's recorded element type.
func Downcast[T any](v *AnyVec) (items []T, ok bool) {
	if reflect.TypeFor[T]() != v.typ.Type {
		return nil, false
	}

	if v.memory == nil {
		// nothing pushed yet
		return nil, true
	}

	return unsafe.Slice((*T)(v.memory), v.len), true
}
