package memory

import (
	"context"
	"sync"
)

// UnitOfWork is a test double counting Save calls. FailWith forces the next
// Save to return an error.
type UnitOfWork struct {
	mu    sync.Mutex
	saves int
	err   error
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{}
}

func (u *UnitOfWork) Save(_ context.Context) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.err != nil {
		return 0, u.err
	}
	u.saves++
	return 1, nil
}

// FailWith makes every subsequent Save fail with err.
func (u *UnitOfWork) FailWith(err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.err = err
}

// Saves reports how many successful commits happened.
func (u *UnitOfWork) Saves() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.saves
}
