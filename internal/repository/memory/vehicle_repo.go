// Package memory provides in-memory repository implementations used by tests
// and local development. Aggregates are stored as records and rebuilt on
// every read so callers never share entity state with the store.
package memory

import (
	"context"
	"sync"

	"fleet-rental-service/internal/domain"
	"fleet-rental-service/internal/domain/vehicle"
)

// VehicleRepository is an in-memory vehicle store preserving insertion order.
type VehicleRepository struct {
	mu      sync.Mutex
	records []vehicle.Record
}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{}
}

func (r *VehicleRepository) GetByID(_ context.Context, id vehicle.ID) (*vehicle.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return vehicle.Restore(rec)
		}
	}
	return nil, domain.VehicleNotFound(id)
}

func (r *VehicleRepository) GetByStatus(_ context.Context, status vehicle.Status) ([]*vehicle.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var vehicles []*vehicle.Vehicle
	for _, rec := range r.records {
		if rec.Status != status {
			continue
		}
		v, err := vehicle.Restore(rec)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	return r.GetByStatus(ctx, vehicle.StatusAvailable)
}

func (r *VehicleRepository) GetByModel(_ context.Context, model string) ([]*vehicle.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var vehicles []*vehicle.Vehicle
	for _, rec := range r.records {
		if rec.Model != model {
			continue
		}
		v, err := vehicle.Restore(rec)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

func (r *VehicleRepository) Add(_ context.Context, v *vehicle.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, v.ToRecord())
	return nil
}

func (r *VehicleRepository) Update(_ context.Context, v *vehicle.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := v.ToRecord()
	for i := range r.records {
		if r.records[i].ID == rec.ID {
			r.records[i] = rec
			return nil
		}
	}
	return domain.VehicleNotFound(rec.ID)
}

func (r *VehicleRepository) ExistsByID(_ context.Context, id vehicle.ID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return true, nil
		}
	}
	return false, nil
}
