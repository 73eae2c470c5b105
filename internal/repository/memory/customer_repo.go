package memory

import (
	"context"
	"fmt"
	"sync"

	"fleet-rental-service/internal/domain"
	"fleet-rental-service/internal/domain/customer"
)

// CustomerRepository is an in-memory customer store.
type CustomerRepository struct {
	mu      sync.Mutex
	records []customer.Record
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) GetByID(_ context.Context, id customer.ID) (*customer.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return customer.Restore(rec)
		}
	}
	return nil, domain.CustomerNotFound(id)
}

func (r *CustomerRepository) GetByEmail(_ context.Context, email customer.Email) (*customer.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.Email == email.String() {
			return customer.Restore(rec)
		}
	}
	return nil, fmt.Errorf("customer with email %s: %w", email, domain.ErrCustomerNotFound)
}

func (r *CustomerRepository) Add(_ context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, c.ToRecord())
	return nil
}

func (r *CustomerRepository) Update(_ context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := c.ToRecord()
	for i := range r.records {
		if r.records[i].ID == rec.ID {
			r.records[i] = rec
			return nil
		}
	}
	return domain.CustomerNotFound(rec.ID)
}

func (r *CustomerRepository) ExistsByEmail(_ context.Context, email customer.Email) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.Email == email.String() {
			return true, nil
		}
	}
	return false, nil
}
