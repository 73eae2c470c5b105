package vehicle

import "context"

// Repository is the persistence contract for vehicles.
type Repository interface {
	// GetByID returns the vehicle or a domain.ErrVehicleNotFound.
	GetByID(ctx context.Context, id ID) (*Vehicle, error)
	GetByStatus(ctx context.Context, status Status) ([]*Vehicle, error)
	GetAvailable(ctx context.Context) ([]*Vehicle, error)
	GetByModel(ctx context.Context, model string) ([]*Vehicle, error)
	Add(ctx context.Context, v *Vehicle) error
	Update(ctx context.Context, v *Vehicle) error
	ExistsByID(ctx context.Context, id ID) (bool, error)
}
