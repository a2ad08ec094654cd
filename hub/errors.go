package hub

import "errors"

// ErrBorrowConflict is wrapped by the panic raised when the shared or
// exclusive borrow discipline on a Column or resource cell is violated.
// Such a violation is a defect in the calling system and is never retried.
var ErrBorrowConflict = errors.New("borrow conflict")

// ErrTypeMismatch is wrapped by the panic raised when a value of the wrong
// type is pushed into an AnyVec. A mismatch can only come from a broken
// archetype descriptor, never from legitimate runtime input.
var ErrTypeMismatch = errors.New("component type mismatch")
