package hub

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"
)

// MaxComponentTypes is the number of distinct component types the registry
// can hold. It equals the width of a mask.Mask, since a type's id doubles
// as its bit in table schema masks.
const MaxComponentTypes = 64

// ComponentTypeId identifies a registered component type. Ids are assigned
// sequentially on first registration.
type ComponentTypeId uint32

// ComponentType is the canonical runtime identity of one component type.
// Two components have the same type iff they share the same *ComponentType
// pointer.
type ComponentType struct {
	Name string
	Type reflect.Type
	Id   ComponentTypeId
}

// Bit returns the type's position in a table's schema mask.
func (c *ComponentType) Bit() uint32 {
	return uint32(c.Id)
}

func (c *ComponentType) String() string {
	return c.Name
}

var (
	typesMu sync.Mutex
	types   = map[reflect.Type]*ComponentType{}
)

// TypeOf returns the canonical ComponentType for T, registering it on
// first use.
func TypeOf[T any]() *ComponentType {
	return TypeFor(reflect.TypeFor[T]())
}

// TypeFor is the non-generic variant of TypeOf for callers that only hold
// a reflect.Type.
func TypeFor(rt reflect.Type) *ComponentType {
	typesMu.Lock()
	defer typesMu.Unlock()

	if ct, ok := types[rt]; ok {
		return ct
	}

	if len(types) >= MaxComponentTypes {
		panic(fmt.Sprintf("component type registry is full (%d types), cannot register %s", MaxComponentTypes, rt))
	}

	ct := &ComponentType{
		Name: rt.String(),
		Type: rt,
		Id:   ComponentTypeId(len(types)),
	}

	types[rt] = ct

	slog.Debug(
		"New component type registered",
		slog.String("name", ct.Name),
		slog.Int("id", int(ct.Id)),
	)

	return ct
}
