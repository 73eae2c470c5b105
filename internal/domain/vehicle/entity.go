package vehicle

import (
	"strings"
	"time"

	"fleet-rental-service/internal/domain"
)

// Status is the lifecycle state of a vehicle in the fleet.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusRented      Status = "Rented"
	StatusMaintenance Status = "Maintenance"
)

// ParseStatus maps a stored string back into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusRented, StatusMaintenance:
		return Status(s), nil
	default:
		return "", domain.Errorf("Unknown vehicle status: %s", s)
	}
}

// Vehicle is the fleet aggregate root. Identity is the ID alone; two vehicles
// with the same ID are the same vehicle regardless of model or status.
type Vehicle struct {
	id           ID
	model        string
	creationDate time.Time
	status       Status
}

// New validates the model and creates an Available vehicle.
func New(id ID, model string) (*Vehicle, error) {
	trimmed := strings.TrimSpace(model)
	if trimmed == "" {
		return nil, domain.Errorf("Vehicle model cannot be empty.")
	}
	if len([]rune(trimmed)) > 100 {
		return nil, domain.Errorf("Vehicle model cannot exceed 100 characters.")
	}
	return &Vehicle{
		id:           id,
		model:        trimmed,
		creationDate: time.Now().UTC(),
		status:       StatusAvailable,
	}, nil
}

// Record is the storage shape of a vehicle. Persistence adapters map rows into
// Records and back; the aggregate itself has no storage concerns.
type Record struct {
	ID           ID
	Model        string
	CreationDate time.Time
	Status       Status
}

// Restore rebuilds a vehicle from its storage record, re-validating the parts
// that could have been corrupted outside the domain.
func Restore(rec Record) (*Vehicle, error) {
	if rec.ID.IsZero() {
		return nil, domain.Errorf("Vehicle ID cannot be empty.")
	}
	if strings.TrimSpace(rec.Model) == "" {
		return nil, domain.Errorf("Vehicle model cannot be empty.")
	}
	if _, err := ParseStatus(string(rec.Status)); err != nil {
		return nil, err
	}
	return &Vehicle{
		id:           rec.ID,
		model:        rec.Model,
		creationDate: rec.CreationDate,
		status:       rec.Status,
	}, nil
}

// ToRecord exports the vehicle for persistence.
func (v *Vehicle) ToRecord() Record {
	return Record{
		ID:           v.id,
		Model:        v.model,
		CreationDate: v.creationDate,
		Status:       v.status,
	}
}

func (v *Vehicle) ID() ID { return v.id }

func (v *Vehicle) Model() string { return v.model }

func (v *Vehicle) CreationDate() time.Time { return v.creationDate }

func (v *Vehicle) Status() Status { return v.status }

// IsAvailable reports whether the vehicle can be rented right now.
func (v *Vehicle) IsAvailable() bool {
	return v.status == StatusAvailable
}

// MarkAsRented transitions Available -> Rented.
func (v *Vehicle) MarkAsRented() error {
	if !v.IsAvailable() {
		return domain.Errorf("Vehicle %s is not available for rental. Current status: %s", v.id, v.status)
	}
	v.status = StatusRented
	return nil
}

// MarkAsAvailable transitions Rented -> Available.
func (v *Vehicle) MarkAsAvailable() error {
	if v.status != StatusRented {
		return domain.Errorf("Vehicle %s is not currently rented. Current status: %s", v.id, v.status)
	}
	v.status = StatusAvailable
	return nil
}

// MarkAsUnderMaintenance takes the vehicle out of circulation. Allowed from
// Available and Maintenance; a rented vehicle must come back first.
func (v *Vehicle) MarkAsUnderMaintenance() error {
	if v.status == StatusRented {
		return domain.Errorf("Cannot put rented vehicle %s under maintenance.", v.id)
	}
	v.status = StatusMaintenance
	return nil
}

// Equals compares vehicles by identity.
func (v *Vehicle) Equals(other *Vehicle) bool {
	if other == nil {
		return false
	}
	return v.id == other.id
}
