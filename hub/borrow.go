package hub

import "fmt"

// BorrowFlag implements the dynamic shared/exclusive access discipline for
// one storage cell. Any number of shared borrows may coexist; an exclusive
// borrow requires that no other borrow is outstanding. A conflict is a
// defect in the calling code and panics immediately; nothing ever blocks.
type BorrowFlag struct {
	shared    int
	exclusive bool
}

// Acquire takes a shared borrow. The owner name is only used in the panic
// message on conflict.
func (b *BorrowFlag) Acquire(owner string) {
	if b.exclusive {
		panic(fmt.Errorf("%w: %s is exclusively borrowed", ErrBorrowConflict, owner))
	}

	b.shared += 1
}

// AcquireMut takes an exclusive borrow.
func (b *BorrowFlag) AcquireMut(owner string) {
	if b.exclusive || b.shared > 0 {
		panic(fmt.Errorf("%w: %s is already borrowed", ErrBorrowConflict, owner))
	}

	b.exclusive = true
}

func (b *BorrowFlag) Release() {
	if b.shared == 0 {
		panic("release of a borrow that was never taken")
	}

	b.shared -= 1
}

func (b *BorrowFlag) ReleaseMut() {
	if !b.exclusive {
		panic("release of an exclusive borrow that was never taken")
	}

	b.exclusive = false
}
