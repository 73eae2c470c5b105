package customer

import (
	"github.com/google/uuid"

	"fleet-rental-service/internal/domain"
)

// ID identifies a customer. The zero UUID is never a valid ID.
type ID struct {
	value uuid.UUID
}

// NewID wraps a UUID, rejecting the zero value.
func NewID(value uuid.UUID) (ID, error) {
	if value == uuid.Nil {
		return ID{}, domain.Errorf("Customer ID cannot be empty.")
	}
	return ID{value: value}, nil
}

// ParseID parses a textual UUID into a customer ID.
func ParseID(s string) (ID, error) {
	value, err := uuid.Parse(s)
	if err != nil {
		return ID{}, domain.Errorf("Invalid customer ID: %s", s)
	}
	return NewID(value)
}

// NextID produces a fresh customer ID.
func NextID() ID {
	return ID{value: uuid.New()}
}

// UUID returns the underlying UUID value.
func (id ID) UUID() uuid.UUID {
	return id.value
}

// IsZero reports whether the ID is the invalid zero value.
func (id ID) IsZero() bool {
	return id.value == uuid.Nil
}

func (id ID) String() string {
	return id.value.String()
}
