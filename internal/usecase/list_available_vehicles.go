package usecase

import (
	"context"
	"time"

	"fleet-rental-service/internal/domain/vehicle"
)

// AvailableVehicle is one row of the available-vehicles listing.
type AvailableVehicle struct {
	VehicleID    string
	Model        string
	Status       string
	CreationDate time.Time
}

// ListAvailableVehiclesOutput carries the listing in repository order.
type ListAvailableVehiclesOutput struct {
	Vehicles []AvailableVehicle
}

// ListAvailableVehiclesResult holds either the output or a single failure.
type ListAvailableVehiclesResult struct {
	Output  *ListAvailableVehiclesOutput
	Failure *Failure
}

// ListAvailableVehicles returns every vehicle currently available for rental.
// No filtering or pagination; the repository order is preserved.
type ListAvailableVehicles struct {
	vehicleRepo vehicle.Repository
}

func NewListAvailableVehicles(vehicleRepo vehicle.Repository) *ListAvailableVehicles {
	return &ListAvailableVehicles{vehicleRepo: vehicleRepo}
}

func (uc *ListAvailableVehicles) Execute(ctx context.Context) ListAvailableVehiclesResult {
	vehicles, err := uc.vehicleRepo.GetAvailable(ctx)
	if err != nil {
		return ListAvailableVehiclesResult{Failure: failure(FailureNotFound, err.Error())}
	}

	items := make([]AvailableVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		items = append(items, AvailableVehicle{
			VehicleID:    v.ID().String(),
			Model:        v.Model(),
			Status:       string(v.Status()),
			CreationDate: v.CreationDate(),
		})
	}

	return ListAvailableVehiclesResult{Output: &ListAvailableVehiclesOutput{Vehicles: items}}
}
