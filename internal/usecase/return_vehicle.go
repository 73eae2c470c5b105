package usecase

import (
	"context"
	"errors"
	"time"

	"fleet-rental-service/internal/domain"
	"fleet-rental-service/internal/domain/rental"
	"fleet-rental-service/internal/domain/vehicle"
	"fleet-rental-service/internal/service/fleet"
)

// ReturnVehicleInput carries the raw request fields for returning a vehicle.
type ReturnVehicleInput struct {
	RentalID string
	EndDate  time.Time
}

// ReturnVehicleOutput describes the completed rental, including vehicle
// details re-read purely for reporting.
type ReturnVehicleOutput struct {
	RentalID       string
	CustomerID     string
	VehicleID      string
	VehicleModel   string
	StartDate      time.Time
	EndDate        time.Time
	Status         string
	DurationInDays int
	UpdatedAt      time.Time
}

// ReturnVehicleResult holds either the output or a single failure.
type ReturnVehicleResult struct {
	Output  *ReturnVehicleOutput
	Failure *Failure
}

// ReturnVehicle orchestrates the return operation. After the domain service
// completes the rental it re-reads the vehicle solely to enrich the output.
type ReturnVehicle struct {
	rentalService *fleet.RentalService
	vehicleRepo   vehicle.Repository
	unitOfWork    domain.UnitOfWork
}

func NewReturnVehicle(
	rentalService *fleet.RentalService,
	vehicleRepo vehicle.Repository,
	unitOfWork domain.UnitOfWork,
) *ReturnVehicle {
	return &ReturnVehicle{
		rentalService: rentalService,
		vehicleRepo:   vehicleRepo,
		unitOfWork:    unitOfWork,
	}
}

// Execute runs the use case. Missing aggregates map to not-found, rule
// violations to invalid input, and anything unexpected falls back to
// conflict.
func (uc *ReturnVehicle) Execute(ctx context.Context, input ReturnVehicleInput) ReturnVehicleResult {
	rentalID, err := rental.ParseID(input.RentalID)
	if err != nil {
		return ReturnVehicleResult{Failure: uc.classify(err)}
	}

	r, err := uc.rentalService.ReturnVehicle(ctx, rentalID, input.EndDate)
	if err != nil {
		return ReturnVehicleResult{Failure: uc.classify(err)}
	}

	v, err := uc.vehicleRepo.GetByID(ctx, r.VehicleID())
	if err != nil {
		return ReturnVehicleResult{Failure: uc.classify(err)}
	}

	if _, err := uc.unitOfWork.Save(ctx); err != nil {
		return ReturnVehicleResult{Failure: uc.classify(err)}
	}

	duration := 0
	if d := r.DurationInDays(); d != nil {
		duration = *d
	}

	return ReturnVehicleResult{Output: &ReturnVehicleOutput{
		RentalID:       r.ID().String(),
		CustomerID:     r.CustomerID().String(),
		VehicleID:      v.ID().String(),
		VehicleModel:   v.Model(),
		StartDate:      r.StartDate(),
		EndDate:        *r.EndDate(),
		Status:         string(r.Status()),
		DurationInDays: duration,
		UpdatedAt:      *r.UpdatedAt(),
	}}
}

func (uc *ReturnVehicle) classify(err error) *Failure {
	switch {
	case errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrVehicleNotFound):
		return failure(FailureNotFound, err.Error())
	case domain.IsRuleViolation(err):
		return failure(FailureInvalidInput, err.Error())
	default:
		return failure(FailureConflict, err.Error())
	}
}
