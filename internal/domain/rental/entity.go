package rental

import (
	"time"

	"fleet-rental-service/internal/domain"
	"fleet-rental-service/internal/domain/customer"
	"fleet-rental-service/internal/domain/vehicle"
)

// Status is the lifecycle state of a rental.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// ParseStatus maps a stored string back into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", domain.Errorf("Unknown rental status: %s", s)
	}
}

// Rental is the aggregate root tying a customer to a vehicle for a period of
// time. Identity is the ID alone.
type Rental struct {
	id         ID
	customerID customer.ID
	vehicleID  vehicle.ID
	startDate  time.Time
	endDate    *time.Time
	status     Status
	createdAt  time.Time
	updatedAt  *time.Time
}

// New creates an Active rental starting at startDate.
func New(id ID, customerID customer.ID, vehicleID vehicle.ID, startDate time.Time) *Rental {
	return &Rental{
		id:         id,
		customerID: customerID,
		vehicleID:  vehicleID,
		startDate:  startDate,
		status:     StatusActive,
		createdAt:  time.Now().UTC(),
	}
}

// Record is the storage shape of a rental.
type Record struct {
	ID         ID
	CustomerID customer.ID
	VehicleID  vehicle.ID
	StartDate  time.Time
	EndDate    *time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Restore rebuilds a rental from its storage record.
func Restore(rec Record) (*Rental, error) {
	if rec.ID.IsZero() {
		return nil, domain.Errorf("Rental ID cannot be empty.")
	}
	if _, err := ParseStatus(string(rec.Status)); err != nil {
		return nil, err
	}
	return &Rental{
		id:         rec.ID,
		customerID: rec.CustomerID,
		vehicleID:  rec.VehicleID,
		startDate:  rec.StartDate,
		endDate:    rec.EndDate,
		status:     rec.Status,
		createdAt:  rec.CreatedAt,
		updatedAt:  rec.UpdatedAt,
	}, nil
}

// ToRecord exports the rental for persistence.
func (r *Rental) ToRecord() Record {
	return Record{
		ID:         r.id,
		CustomerID: r.customerID,
		VehicleID:  r.vehicleID,
		StartDate:  r.startDate,
		EndDate:    r.endDate,
		Status:     r.status,
		CreatedAt:  r.createdAt,
		UpdatedAt:  r.updatedAt,
	}
}

func (r *Rental) ID() ID { return r.id }

func (r *Rental) CustomerID() customer.ID { return r.customerID }

func (r *Rental) VehicleID() vehicle.ID { return r.vehicleID }

func (r *Rental) StartDate() time.Time { return r.startDate }

func (r *Rental) EndDate() *time.Time { return r.endDate }

func (r *Rental) Status() Status { return r.status }

func (r *Rental) CreatedAt() time.Time { return r.createdAt }

func (r *Rental) UpdatedAt() *time.Time { return r.updatedAt }

// IsActive reports whether the rental is still running.
func (r *Rental) IsActive() bool {
	return r.status == StatusActive
}

// Complete ends an active rental at endDate.
func (r *Rental) Complete(endDate time.Time) error {
	if !r.IsActive() {
		return domain.Errorf("Rental %s is not active. Current status: %s", r.id, r.status)
	}
	if endDate.Before(r.startDate) {
		return domain.Errorf("End date cannot be earlier than start date.")
	}
	r.endDate = &endDate
	r.status = StatusCompleted
	now := time.Now().UTC()
	r.updatedAt = &now
	return nil
}

// Cancel aborts an active rental without an end date.
func (r *Rental) Cancel() error {
	if !r.IsActive() {
		return domain.Errorf("Rental %s is not active. Current status: %s", r.id, r.status)
	}
	r.status = StatusCancelled
	now := time.Now().UTC()
	r.updatedAt = &now
	return nil
}

// DurationInDays returns the whole-day rental length, or nil until the rental
// has been completed.
func (r *Rental) DurationInDays() *int {
	if r.endDate == nil {
		return nil
	}
	days := int(r.endDate.Sub(r.startDate).Hours() / 24)
	return &days
}

// Equals compares rentals by identity.
func (r *Rental) Equals(other *Rental) bool {
	if other == nil {
		return false
	}
	return r.id == other.id
}
