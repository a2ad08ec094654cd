package crank

import (
	"fmt"
	"reflect"

	"github.com/crankworks/crank/hub"
)

// Bundle lets an archetype supply an explicit descriptor instead of the
// reflection-derived one: a static ordered list of component types and the
// matching append sequence. AppendTo must append exactly one row through
// Table.Append, one value per component type in the declared order.
//
// Bundle must be implemented on the value receiver of the archetype
// struct.
type Bundle interface {
	ComponentTypes() []*hub.ComponentType
	AppendTo(*hub.Table)
}

// archetype is the cached per-type descriptor driving a spawn: the table
// schema and how to take a row out of the entity value.
type archetype struct {
	types []*hub.ComponentType

	// struct field indices in schema order; unused for Bundle types
	fields []int
	bundle bool
}

func (w *World[E]) archetypeFor(key reflect.Type) *archetype {
	if arch, ok := w.archetypes[key]; ok {
		return arch
	}

	arch := describeArchetype(key)
	w.archetypes[key] = arch
	return arch
}

func describeArchetype(key reflect.Type) *archetype {
	if key.Implements(reflect.TypeFor[Bundle]()) {
		bundle := reflect.Zero(key).Interface().(Bundle)
		return &archetype{types: bundle.ComponentTypes(), bundle: true}
	}

	if key.Kind() != reflect.Struct {
		panic(fmt.Sprintf("archetype %s must be a struct or implement Bundle", key))
	}

	arch := &archetype{}

	for i := range key.NumField() {
		field := key.Field(i)
		if !field.IsExported() {
			panic(fmt.Sprintf("archetype %s has unexported field %s; component fields must be exported", key, field.Name))
		}

		arch.types = append(arch.types, hub.TypeFor(field.Type))
		arch.fields = append(arch.fields, i)
	}

	if len(arch.types) == 0 {
		panic(fmt.Sprintf("archetype %s has no component fields", key))
	}

	return arch
}

func (a *archetype) append(tab *hub.Table, entity any) {
	if a.bundle {
		entity.(Bundle).AppendTo(tab)
		return
	}

	rv := reflect.ValueOf(entity)

	row := make([]any, len(a.fields))
	for i, idx := range a.fields {
		row[i] = rv.Field(idx).Interface()
	}

	tab.Append(row...)
}
