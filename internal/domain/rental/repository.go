package rental

import (
	"context"

	"fleet-rental-service/internal/domain/customer"
	"fleet-rental-service/internal/domain/vehicle"
)

// Repository is the persistence contract for rentals.
type Repository interface {
	// GetByID returns the rental or a domain.ErrRentalNotFound.
	GetByID(ctx context.Context, id ID) (*Rental, error)
	GetByCustomer(ctx context.Context, customerID customer.ID) ([]*Rental, error)
	GetByVehicle(ctx context.Context, vehicleID vehicle.ID) ([]*Rental, error)
	GetByStatus(ctx context.Context, status Status) ([]*Rental, error)
	// GetActiveByCustomer returns (nil, nil) when the customer has no active
	// rental.
	GetActiveByCustomer(ctx context.Context, customerID customer.ID) (*Rental, error)
	// GetActiveByVehicle returns (nil, nil) when the vehicle has no active
	// rental.
	GetActiveByVehicle(ctx context.Context, vehicleID vehicle.ID) (*Rental, error)
	Add(ctx context.Context, r *Rental) error
	Update(ctx context.Context, r *Rental) error
	CustomerHasActiveRental(ctx context.Context, customerID customer.ID) (bool, error)
}
