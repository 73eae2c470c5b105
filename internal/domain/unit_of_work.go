package domain

import "context"

// UnitOfWork marks a use case's mutations as durably committed. Each use case
// calls Save exactly once after its repository writes; a Save failure fails
// the whole use case.
type UnitOfWork interface {
	Save(ctx context.Context) (int, error)
}
