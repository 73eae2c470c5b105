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
	"fleet-rental-service/internal/domain/rental"
	"fleet-rental-service/internal/domain/vehicle"
)

// RentalRepository is the pgx-backed rental store.
type RentalRepository struct {
	db *pgxpool.Pool
}

func NewRentalRepository(db *pgxpool.Pool) *RentalRepository {
	return &RentalRepository{db: db}
}

const rentalColumns = `id, customer_id, vehicle_id, start_date, end_date, status, created_at, updated_at`

type rentalRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	VehicleID  uuid.UUID
	StartDate  time.Time
	EndDate    *time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func (row rentalRow) toEntity() (*rental.Rental, error) {
	id, err := rental.NewID(row.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := customer.NewID(row.CustomerID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := vehicle.NewID(row.VehicleID)
	if err != nil {
		return nil, err
	}
	return rental.Restore(rental.Record{
		ID:         id,
		CustomerID: customerID,
		VehicleID:  vehicleID,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		Status:     rental.Status(row.Status),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	})
}

func (row *rentalRow) scan(scanner interface{ Scan(...any) error }) error {
	return scanner.Scan(
		&row.ID, &row.CustomerID, &row.VehicleID, &row.StartDate,
		&row.EndDate, &row.Status, &row.CreatedAt, &row.UpdatedAt,
	)
}

// GetByID retrieves a rental by ID.
func (r *RentalRepository) GetByID(ctx context.Context, id rental.ID) (*rental.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`

	var row rentalRow
	err := row.scan(r.db.QueryRow(ctx, query, id.UUID()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.RentalNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find rental: %w", err)
	}

	return row.toEntity()
}

// GetByCustomer retrieves all rentals for a customer, newest first.
func (r *RentalRepository) GetByCustomer(ctx context.Context, customerID customer.ID) ([]*rental.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, customerID.UUID())
}

// GetByVehicle retrieves all rentals for a vehicle, newest first.
func (r *RentalRepository) GetByVehicle(ctx context.Context, vehicleID vehicle.ID) ([]*rental.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE vehicle_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, vehicleID.UUID())
}

// GetByStatus retrieves all rentals with the given status, newest first.
func (r *RentalRepository) GetByStatus(ctx context.Context, status rental.Status) ([]*rental.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, string(status))
}

// GetActiveByCustomer returns the customer's active rental, or nil when there
// is none.
func (r *RentalRepository) GetActiveByCustomer(ctx context.Context, customerID customer.ID) (*rental.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE customer_id = $1 AND status = $2 LIMIT 1`

	var row rentalRow
	err := row.scan(r.db.QueryRow(ctx, query, customerID.UUID(), string(rental.StatusActive)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find active rental for customer: %w", err)
	}

	return row.toEntity()
}

// GetActiveByVehicle returns the vehicle's active rental, or nil when there
// is none.
func (r *RentalRepository) GetActiveByVehicle(ctx context.Context, vehicleID vehicle.ID) (*rental.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE vehicle_id = $1 AND status = $2 LIMIT 1`

	var row rentalRow
	err := row.scan(r.db.QueryRow(ctx, query, vehicleID.UUID(), string(rental.StatusActive)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find active rental for vehicle: %w", err)
	}

	return row.toEntity()
}

// Add inserts a new rental.
func (r *RentalRepository) Add(ctx context.Context, rent *rental.Rental) error {
	query := `
		INSERT INTO rentals (id, customer_id, vehicle_id, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	rec := rent.ToRecord()
	_, err := r.db.Exec(ctx, query,
		rec.ID.UUID(), rec.CustomerID.UUID(), rec.VehicleID.UUID(),
		rec.StartDate, rec.EndDate, string(rec.Status), rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add rental: %w", err)
	}

	return nil
}

// Update persists the current state of an existing rental.
func (r *RentalRepository) Update(ctx context.Context, rent *rental.Rental) error {
	query := `UPDATE rentals SET end_date = $2, status = $3, updated_at = $4 WHERE id = $1`

	rec := rent.ToRecord()
	tag, err := r.db.Exec(ctx, query, rec.ID.UUID(), rec.EndDate, string(rec.Status), rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update rental: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.RentalNotFound(rec.ID)
	}

	return nil
}

// CustomerHasActiveRental reports whether the customer has an active rental.
func (r *RentalRepository) CustomerHasActiveRental(ctx context.Context, customerID customer.ID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rentals WHERE customer_id = $1 AND status = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, customerID.UUID(), string(rental.StatusActive)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check active rental: %w", err)
	}

	return exists, nil
}

func (r *RentalRepository) list(ctx context.Context, query string, arg any) ([]*rental.Rental, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	defer rows.Close()

	var rentals []*rental.Rental
	for rows.Next() {
		var row rentalRow
		if err := row.scan(rows); err != nil {
			return nil, fmt.Errorf("failed to scan rental: %w", err)
		}
		rent, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rentals: %w", err)
	}
	return rentals, nil
}
