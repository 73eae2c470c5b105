package usecase

import (
	"context"
	"time"

	"fleet-rental-service/internal/domain"
	"fleet-rental-service/internal/domain/vehicle"
	"fleet-rental-service/internal/service/fleet"
)

// CreateVehicleInput carries the raw request fields for adding a vehicle to
// the fleet.
type CreateVehicleInput struct {
	VehicleID string
	Model     string
}

// CreateVehicleOutput describes the vehicle that joined the fleet.
type CreateVehicleOutput struct {
	VehicleID    string
	Model        string
	Status       string
	CreationDate time.Time
}

// CreateVehicleResult holds either the output or a single failure.
type CreateVehicleResult struct {
	Output  *CreateVehicleOutput
	Failure *Failure
}

// CreateVehicle orchestrates fleet admission: id parsing, domain-service
// validation and creation, then the unit-of-work commit.
type CreateVehicle struct {
	rentalService *fleet.RentalService
	unitOfWork    domain.UnitOfWork
}

func NewCreateVehicle(rentalService *fleet.RentalService, unitOfWork domain.UnitOfWork) *CreateVehicle {
	return &CreateVehicle{
		rentalService: rentalService,
		unitOfWork:    unitOfWork,
	}
}

// Execute runs the use case. Rule violations map to invalid input; anything
// unexpected falls back to not-found, mirroring the service contract.
func (uc *CreateVehicle) Execute(ctx context.Context, input CreateVehicleInput) CreateVehicleResult {
	vehicleID, err := vehicle.ParseID(input.VehicleID)
	if err != nil {
		return CreateVehicleResult{Failure: uc.classify(err)}
	}

	v, err := uc.rentalService.CreateVehicle(ctx, vehicleID, input.Model)
	if err != nil {
		return CreateVehicleResult{Failure: uc.classify(err)}
	}

	if _, err := uc.unitOfWork.Save(ctx); err != nil {
		return CreateVehicleResult{Failure: uc.classify(err)}
	}

	return CreateVehicleResult{Output: &CreateVehicleOutput{
		VehicleID:    v.ID().String(),
		Model:        v.Model(),
		Status:       string(v.Status()),
		CreationDate: v.CreationDate(),
	}}
}

func (uc *CreateVehicle) classify(err error) *Failure {
	if domain.IsRuleViolation(err) {
		return failure(FailureInvalidInput, err.Error())
	}
	return failure(FailureNotFound, err.Error())
}
