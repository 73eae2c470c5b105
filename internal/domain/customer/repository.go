package customer

import "context"

// Repository is the persistence contract for customers.
type Repository interface {
	// GetByID returns the customer or a domain.ErrCustomerNotFound.
	GetByID(ctx context.Context, id ID) (*Customer, error)
	GetByEmail(ctx context.Context, email Email) (*Customer, error)
	Add(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	ExistsByEmail(ctx context.Context, email Email) (bool, error)
}

// Factory builds new customers with fresh identifiers. The rent flow uses it
// to register a customer seen for the first time.
type Factory interface {
	NewCustomer(name Name, email Email) *Customer
}
