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
	"fleet-rental-service/internal/domain/vehicle"
)

// VehicleRepository is the pgx-backed vehicle store.
type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db}
}

const vehicleColumns = `id, model, creation_date, status`

type vehicleRow struct {
	ID           uuid.UUID
	Model        string
	CreationDate time.Time
	Status       string
}

func (row vehicleRow) toEntity() (*vehicle.Vehicle, error) {
	id, err := vehicle.NewID(row.ID)
	if err != nil {
		return nil, err
	}
	return vehicle.Restore(vehicle.Record{
		ID:           id,
		Model:        row.Model,
		CreationDate: row.CreationDate,
		Status:       vehicle.Status(row.Status),
	})
}

// GetByID retrieves a vehicle by ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id vehicle.ID) (*vehicle.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	var row vehicleRow
	err := r.db.QueryRow(ctx, query, id.UUID()).Scan(&row.ID, &row.Model, &row.CreationDate, &row.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.VehicleNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}

	return row.toEntity()
}

// GetByStatus retrieves all vehicles with the given status, oldest first.
func (r *VehicleRepository) GetByStatus(ctx context.Context, status vehicle.Status) ([]*vehicle.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE status = $1 ORDER BY creation_date`

	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles by status: %w", err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// GetAvailable retrieves all vehicles currently available for rental.
func (r *VehicleRepository) GetAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	return r.GetByStatus(ctx, vehicle.StatusAvailable)
}

// GetByModel retrieves vehicles with a matching model.
func (r *VehicleRepository) GetByModel(ctx context.Context, model string) ([]*vehicle.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE model = $1 ORDER BY creation_date`

	rows, err := r.db.Query(ctx, query, model)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles by model: %w", err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// Add inserts a new vehicle.
func (r *VehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, model, creation_date, status)
		VALUES ($1, $2, $3, $4)
	`

	rec := v.ToRecord()
	if _, err := r.db.Exec(ctx, query, rec.ID.UUID(), rec.Model, rec.CreationDate, string(rec.Status)); err != nil {
		return fmt.Errorf("failed to add vehicle: %w", err)
	}

	return nil
}

// Update persists the current state of an existing vehicle.
func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	query := `UPDATE vehicles SET model = $2, status = $3 WHERE id = $1`

	rec := v.ToRecord()
	tag, err := r.db.Exec(ctx, query, rec.ID.UUID(), rec.Model, string(rec.Status))
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.VehicleNotFound(rec.ID)
	}

	return nil
}

// ExistsByID reports whether a vehicle with the ID is already in the fleet.
func (r *VehicleRepository) ExistsByID(ctx context.Context, id vehicle.ID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM vehicles WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id.UUID()).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check vehicle existence: %w", err)
	}

	return exists, nil
}

func scanVehicles(rows pgx.Rows) ([]*vehicle.Vehicle, error) {
	var vehicles []*vehicle.Vehicle
	for rows.Next() {
		var row vehicleRow
		if err := rows.Scan(&row.ID, &row.Model, &row.CreationDate, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		v, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vehicles: %w", err)
	}
	return vehicles, nil
}
