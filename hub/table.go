package hub

import (
	"fmt"
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Table stores every entity of one archetype: one Column per component
// type in a fixed schema order, all columns kept at the same length.
type Table struct {
	length  int
	columns []*Column
	mask    mask.Mask
}

var _ mask.Maskable = (*Table)(nil)

// NewTable allocates one empty Column per supplied type, preserving
// order. Supplying the same type twice is a schema defect and panics.
func NewTable(types ...*ComponentType) *Table {
	t := &Table{}

	for _, typ := range types {
		if _, ok := t.ColumnFor(typ); ok {
			panic(fmt.Sprintf("duplicate component type %s in table schema", typ))
		}

		t.columns = append(t.columns, newColumn(typ))
		t.mask.Mark(typ.Bit())
	}

	return t
}

// Len returns the row count.
func (t *Table) Len() int {
	return t.length
}

// Mask returns the schema mask, one bit per component type.
func (t *Table) Mask() mask.Mask {
	return t.mask
}

// Contains reports whether the schema includes the given component type.
func (t *Table) Contains(typ *ComponentType) bool {
	var m mask.Mask
	m.Mark(typ.Bit())
	return t.mask.ContainsAll(m)
}

// ColumnFor locates the column holding components of the given type.
// Absence is a normal outcome, not an error.
func (t *Table) ColumnFor(typ *ComponentType) (*Column, bool) {
	for _, c := range t.columns {
		if c.Type() == typ {
			return c, true
		}
	}

	return nil, false
}

// Columns yields every column in schema order.
func (t *Table) Columns() iter.Seq[*Column] {
	return func(yield func(*Column) bool) {
		for _, c := range t.columns {
			if !yield(c) {
				return
			}
		}
	}
}

// Append adds one row: exactly one value per column, in schema order.
// Supplying the wrong number of values, a value of the wrong type, or
// appending while any column is borrowed panics. After the append every
// column's length must again equal the row count.
func (t *Table) Append(values ...any) {
	if len(values) != len(t.columns) {
		panic(fmt.Sprintf("table with %d columns got a row of %d values", len(t.columns), len(values)))
	}

	for i, c := range t.columns {
		c.borrow.AcquireMut(c.Type().Name)
		c.push(values[i])
		c.borrow.ReleaseMut()
	}

	t.length += 1

	for _, c := range t.columns {
		if c.Len() != t.length {
			panic(fmt.Sprintf("column %s has %d rows, table has %d", c.Type(), c.Len(), t.length))
		}
	}
}
