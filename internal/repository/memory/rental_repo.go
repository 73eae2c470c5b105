package memory

import (
	"context"
	"sync"

	"fleet-rental-service/internal/domain"
	"fleet-rental-service/internal/domain/customer"
	"fleet-rental-service/internal/domain/rental"
	"fleet-rental-service/internal/domain/vehicle"
)

// RentalRepository is an in-memory rental store.
type RentalRepository struct {
	mu      sync.Mutex
	records []rental.Record
}

func NewRentalRepository() *RentalRepository {
	return &RentalRepository{}
}

func (r *RentalRepository) GetByID(_ context.Context, id rental.ID) (*rental.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return rental.Restore(rec)
		}
	}
	return nil, domain.RentalNotFound(id)
}

func (r *RentalRepository) GetByCustomer(_ context.Context, customerID customer.ID) ([]*rental.Rental, error) {
	return r.filter(func(rec rental.Record) bool { return rec.CustomerID == customerID })
}

func (r *RentalRepository) GetByVehicle(_ context.Context, vehicleID vehicle.ID) ([]*rental.Rental, error) {
	return r.filter(func(rec rental.Record) bool { return rec.VehicleID == vehicleID })
}

func (r *RentalRepository) GetByStatus(_ context.Context, status rental.Status) ([]*rental.Rental, error) {
	return r.filter(func(rec rental.Record) bool { return rec.Status == status })
}

func (r *RentalRepository) GetActiveByCustomer(_ context.Context, customerID customer.ID) (*rental.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.CustomerID == customerID && rec.Status == rental.StatusActive {
			return rental.Restore(rec)
		}
	}
	return nil, nil
}

func (r *RentalRepository) GetActiveByVehicle(_ context.Context, vehicleID vehicle.ID) (*rental.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.VehicleID == vehicleID && rec.Status == rental.StatusActive {
			return rental.Restore(rec)
		}
	}
	return nil, nil
}

func (r *RentalRepository) Add(_ context.Context, rent *rental.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rent.ToRecord())
	return nil
}

func (r *RentalRepository) Update(_ context.Context, rent *rental.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := rent.ToRecord()
	for i := range r.records {
		if r.records[i].ID == rec.ID {
			r.records[i] = rec
			return nil
		}
	}
	return domain.RentalNotFound(rec.ID)
}

func (r *RentalRepository) CustomerHasActiveRental(ctx context.Context, customerID customer.ID) (bool, error) {
	active, err := r.GetActiveByCustomer(ctx, customerID)
	if err != nil {
		return false, err
	}
	return active != nil, nil
}

func (r *RentalRepository) filter(keep func(rental.Record) bool) ([]*rental.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rentals []*rental.Rental
	for _, rec := range r.records {
		if !keep(rec) {
			continue
		}
		rent, err := rental.Restore(rec)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rent)
	}
	return rentals, nil
}
