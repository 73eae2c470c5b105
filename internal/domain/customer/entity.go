package customer

import (
	"time"

	"fleet-rental-service/internal/domain"
)

// Customer is an aggregate root identified by ID alone.
type Customer struct {
	id        ID
	name      Name
	email     Email
	createdAt time.Time
	updatedAt *time.Time
}

// New creates a customer from validated value objects.
func New(id ID, name Name, email Email) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		createdAt: time.Now().UTC(),
	}
}

// Record is the storage shape of a customer.
type Record struct {
	ID        ID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Restore rebuilds a customer from its storage record, re-running value
// object validation.
func Restore(rec Record) (*Customer, error) {
	if rec.ID.IsZero() {
		return nil, domain.Errorf("Customer ID cannot be empty.")
	}
	name, err := NewName(rec.Name)
	if err != nil {
		return nil, err
	}
	email, err := NewEmail(rec.Email)
	if err != nil {
		return nil, err
	}
	return &Customer{
		id:        rec.ID,
		name:      name,
		email:     email,
		createdAt: rec.CreatedAt,
		updatedAt: rec.UpdatedAt,
	}, nil
}

// ToRecord exports the customer for persistence.
func (c *Customer) ToRecord() Record {
	return Record{
		ID:        c.id,
		Name:      c.name.String(),
		Email:     c.email.String(),
		CreatedAt: c.createdAt,
		UpdatedAt: c.updatedAt,
	}
}

func (c *Customer) ID() ID { return c.id }

func (c *Customer) Name() Name { return c.name }

func (c *Customer) Email() Email { return c.email }

func (c *Customer) CreatedAt() time.Time { return c.createdAt }

func (c *Customer) UpdatedAt() *time.Time { return c.updatedAt }

// Update replaces the customer's name and email and stamps the change.
func (c *Customer) Update(name Name, email Email) {
	c.name = name
	c.email = email
	now := time.Now().UTC()
	c.updatedAt = &now
}

// Equals compares customers by identity.
func (c *Customer) Equals(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id == other.id
}
