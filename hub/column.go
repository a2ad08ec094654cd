package hub

// Column is one field of a Table: a type-erased vector plus the borrow
// flag guarding access to it. A Column is owned by exactly one Table,
// which keeps it at the table's row count.
type Column struct {
	vec    *AnyVec
	borrow BorrowFlag
}

func newColumn(typ *ComponentType) *Column {
	return &Column{vec: NewUninit(typ)}
}

func (c *Column) Type() *ComponentType {
	return c.vec.Type()
}

func (c *Column) Len() int {
	return c.vec.Len()
}

// push appends one value without touching the borrow flag. Only the
// table's append path calls this, under its own exclusive borrow.
func (c *Column) push(value any) {
	c.vec.Push(value)
}

// BorrowCol takes a shared borrow of the column and returns its elements
// as a typed slice along with the release function. If T is not the
// column's element type it returns ok=false without acquiring anything.
func BorrowCol[T any](c *Column) (items []T, release func(), ok bool) {
	items, ok = Downcast[T](c.vec)
	if !ok {
		return nil, nil, false
	}

	c.borrow.Acquire(c.Type().Name)
	return items, c.borrow.Release, true
}

// BorrowColMut is the exclusive variant of BorrowCol. It panics if any
// other borrow of the column is outstanding.
func BorrowColMut[T any](c *Column) (items []T, release func(), ok bool) {
	items, ok = Downcast[T](c.vec)
	if !ok {
		return nil, nil, false
	}

	c.borrow.AcquireMut(c.Type().Name)
	return items, c.borrow.ReleaseMut, true
}
