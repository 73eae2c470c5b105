package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fleet-rental-service/internal/domain"
	"fleet-rental-service/internal/domain/customer"
)

// CustomerRepository is the pgx-backed customer store.
type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, name, email, created_at, updated_at`

type customerRow struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (row customerRow) toEntity() (*customer.Customer, error) {
	id, err := customer.NewID(row.ID)
	if err != nil {
		return nil, err
	}
	return customer.Restore(customer.Record{
		ID:        id,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	})
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id customer.ID) (*customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	var row customerRow
	err := r.db.QueryRow(ctx, query, id.UUID()).Scan(&row.ID, &row.Name, &row.Email, &row.CreatedAt, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.CustomerNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return row.toEntity()
}

// GetByEmail retrieves a customer by normalized email.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email customer.Email) (*customer.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

	var row customerRow
	err := r.db.QueryRow(ctx, query, email.String()).Scan(&row.ID, &row.Name, &row.Email, &row.CreatedAt, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("customer with email %s: %w", email, domain.ErrCustomerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer by email: %w", err)
	}

	return row.toEntity()
}

// Add inserts a new customer.
func (r *CustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	rec := c.ToRecord()
	if _, err := r.db.Exec(ctx, query, rec.ID.UUID(), rec.Name, rec.Email, rec.CreatedAt, rec.UpdatedAt); err != nil {
		return fmt.Errorf("failed to add customer: %w", err)
	}

	return nil
}

// Update persists the current state of an existing customer.
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	query := `UPDATE customers SET name = $2, email = $3, updated_at = $4 WHERE id = $1`

	rec := c.ToRecord()
	tag, err := r.db.Exec(ctx, query, rec.ID.UUID(), rec.Name, rec.Email, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.CustomerNotFound(rec.ID)
	}

	return nil
}

// ExistsByEmail reports whether a customer with the email is registered.
func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email customer.Email) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email.String()).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check customer email: %w", err)
	}

	return exists, nil
}
