package usecase

import (
	"context"
	"errors"
	"time"

	"fleet-rental-service/internal/domain"
	"fleet-rental-service/internal/domain/customer"
	"fleet-rental-service/internal/domain/vehicle"
	"fleet-rental-service/internal/service/fleet"
)

// RentVehicleInput carries the raw request fields for renting a vehicle.
// Name and email travel with the request so a first-time customer can be
// registered as part of the rent.
type RentVehicleInput struct {
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	VehicleID     string
	StartDate     time.Time
}

// RentVehicleOutput describes the rental that was created.
type RentVehicleOutput struct {
	RentalID   string
	CustomerID string
	VehicleID  string
	StartDate  time.Time
	Status     string
	CreatedAt  time.Time
}

// RentVehicleResult holds either the output or a single failure.
type RentVehicleResult struct {
	Output  *RentVehicleOutput
	Failure *Failure
}

// RentVehicle orchestrates the rent operation: value-object construction,
// the domain-service rent, opportunistic customer registration, and the
// unit-of-work commit.
type RentVehicle struct {
	customerRepo    customer.Repository
	customerFactory customer.Factory
	rentalService   *fleet.RentalService
	unitOfWork      domain.UnitOfWork
}

func NewRentVehicle(
	customerRepo customer.Repository,
	customerFactory customer.Factory,
	rentalService *fleet.RentalService,
	unitOfWork domain.UnitOfWork,
) *RentVehicle {
	return &RentVehicle{
		customerRepo:    customerRepo,
		customerFactory: customerFactory,
		rentalService:   rentalService,
		unitOfWork:      unitOfWork,
	}
}

// Execute runs the use case. Missing aggregates map to not-found, the
// active-rental rule and every other rule violation map to conflict, and
// anything unexpected falls back to not-found.
func (uc *RentVehicle) Execute(ctx context.Context, input RentVehicleInput) RentVehicleResult {
	customerID, err := customer.ParseID(input.CustomerID)
	if err != nil {
		return RentVehicleResult{Failure: uc.classify(err)}
	}
	customerName, err := customer.NewName(input.CustomerName)
	if err != nil {
		return RentVehicleResult{Failure: uc.classify(err)}
	}
	customerEmail, err := customer.NewEmail(input.CustomerEmail)
	if err != nil {
		return RentVehicleResult{Failure: uc.classify(err)}
	}
	vehicleID, err := vehicle.ParseID(input.VehicleID)
	if err != nil {
		return RentVehicleResult{Failure: uc.classify(err)}
	}

	r, err := uc.rentalService.RentVehicle(ctx, customerID, vehicleID, input.StartDate)
	if err != nil {
		return RentVehicleResult{Failure: uc.classify(err)}
	}

	// Register the customer on first contact. Only reachable when the
	// repository lost the customer between the service's existence check
	// and here; preserved from the original flow.
	if _, err := uc.customerRepo.GetByID(ctx, customerID); err != nil {
		if !errors.Is(err, domain.ErrCustomerNotFound) {
			return RentVehicleResult{Failure: uc.classify(err)}
		}
		c := uc.customerFactory.NewCustomer(customerName, customerEmail)
		if err := uc.customerRepo.Add(ctx, c); err != nil {
			return RentVehicleResult{Failure: uc.classify(err)}
		}
	}

	if _, err := uc.unitOfWork.Save(ctx); err != nil {
		return RentVehicleResult{Failure: uc.classify(err)}
	}

	return RentVehicleResult{Output: &RentVehicleOutput{
		RentalID:   r.ID().String(),
		CustomerID: r.CustomerID().String(),
		VehicleID:  r.VehicleID().String(),
		StartDate:  r.StartDate(),
		Status:     string(r.Status()),
		CreatedAt:  r.CreatedAt(),
	}}
}

func (uc *RentVehicle) classify(err error) *Failure {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrVehicleNotFound):
		return failure(FailureNotFound, err.Error())
	case errors.Is(err, domain.ErrCustomerHasActiveRental):
		return failure(FailureConflict, err.Error())
	case domain.IsRuleViolation(err):
		return failure(FailureConflict, err.Error())
	default:
		return failure(FailureNotFound, err.Error())
	}
}
