package fleet

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"fleet-rental-service/internal/domain"
	"fleet-rental-service/internal/domain/customer"
	"fleet-rental-service/internal/domain/rental"
	"fleet-rental-service/internal/domain/vehicle"
)

// RentalService enforces the rules that span more than one aggregate:
// vehicle availability, the one-active-rental-per-customer rule, and fleet
// membership validation.
//
// The service takes no lock: two concurrent rents for the same vehicle or
// customer race at this layer and are only kept apart by the repository
// reads. Rental and vehicle are also persisted as two independent writes, so
// a crash between them leaves the pair inconsistent. Both gaps are inherited
// from the storage model and accepted.
type RentalService struct {
	vehicleRepo  vehicle.Repository
	customerRepo customer.Repository
	rentalRepo   rental.Repository
	logger       *zap.Logger
}

func NewRentalService(
	vehicleRepo vehicle.Repository,
	customerRepo customer.Repository,
	rentalRepo rental.Repository,
	logger *zap.Logger,
) *RentalService {
	return &RentalService{
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
		logger:       logger,
	}
}

// RentVehicle creates an Active rental for the customer and marks the vehicle
// rented. Rule order matters: existence checks, availability, active-rental
// conflict, then the start date.
func (s *RentalService) RentVehicle(ctx context.Context, customerID customer.ID, vehicleID vehicle.ID, startDate time.Time) (*rental.Rental, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !v.IsAvailable() {
		return nil, domain.Errorf("Vehicle %s is not available for rental. Current status: %s", vehicleID, v.Status())
	}

	hasActive, err := s.rentalRepo.CustomerHasActiveRental(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if hasActive {
		return nil, domain.CustomerHasActiveRental(customerID)
	}

	if startDate.UTC().Truncate(24 * time.Hour).Before(time.Now().UTC().Truncate(24 * time.Hour)) {
		return nil, domain.Errorf("Rental start date cannot be in the past.")
	}

	r := rental.New(rental.NextID(), customerID, vehicleID, startDate)

	if err := v.MarkAsRented(); err != nil {
		return nil, err
	}

	if err := s.rentalRepo.Add(ctx, r); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle rented",
		zap.String("rental_id", r.ID().String()),
		zap.String("customer_id", customerID.String()),
		zap.String("vehicle_id", vehicleID.String()),
	)

	return r, nil
}

// ReturnVehicle completes the rental and puts the vehicle back in
// circulation.
func (s *RentalService) ReturnVehicle(ctx context.Context, rentalID rental.ID, endDate time.Time) (*rental.Rental, error) {
	r, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	v, err := s.vehicleRepo.GetByID(ctx, r.VehicleID())
	if err != nil {
		return nil, err
	}

	if err := r.Complete(endDate); err != nil {
		return nil, err
	}
	if err := v.MarkAsAvailable(); err != nil {
		return nil, err
	}

	if err := s.rentalRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle returned",
		zap.String("rental_id", r.ID().String()),
		zap.String("vehicle_id", v.ID().String()),
	)

	return r, nil
}

// ValidateVehicleForFleet checks ID uniqueness and the model constraints
// before a vehicle may join the fleet.
func (s *RentalService) ValidateVehicleForFleet(ctx context.Context, vehicleID vehicle.ID, model string) error {
	exists, err := s.vehicleRepo.ExistsByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if exists {
		return domain.Errorf("A vehicle with ID %s already exists in the fleet.", vehicleID)
	}

	trimmed := strings.TrimSpace(model)
	if trimmed == "" {
		return domain.Errorf("Vehicle model cannot be empty.")
	}
	if len([]rune(trimmed)) > 100 {
		return domain.Errorf("Vehicle model cannot exceed 100 characters.")
	}

	return nil
}

// CreateVehicle validates and adds a new vehicle to the fleet.
func (s *RentalService) CreateVehicle(ctx context.Context, vehicleID vehicle.ID, model string) (*vehicle.Vehicle, error) {
	if err := s.ValidateVehicleForFleet(ctx, vehicleID, model); err != nil {
		return nil, err
	}

	v, err := vehicle.New(vehicleID, model)
	if err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Add(ctx, v); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle added to fleet",
		zap.String("vehicle_id", vehicleID.String()),
		zap.String("model", v.Model()),
	)

	return v, nil
}
