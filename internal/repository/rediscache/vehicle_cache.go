// Package rediscache decorates the vehicle repository with a Redis
// read-through cache for the available-vehicles listing, the one hot read
// path of the service. Every write to the underlying store invalidates the
// cached listing so repeated reads stay consistent with storage.
package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"fleet-rental-service/internal/domain/vehicle"
)

const availableKey = "vehicles:available"

// VehicleRepository wraps another vehicle.Repository with caching.
type VehicleRepository struct {
	inner  vehicle.Repository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewVehicleRepository(inner vehicle.Repository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *VehicleRepository {
	return &VehicleRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

type cachedVehicle struct {
	ID           uuid.UUID `json:"id"`
	Model        string    `json:"model"`
	CreationDate time.Time `json:"creation_date"`
	Status       string    `json:"status"`
}

// GetAvailable serves the listing from Redis when possible and falls back to
// the inner repository. Cache errors are logged and never fail the read.
func (r *VehicleRepository) GetAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	payload, err := r.client.Get(ctx, availableKey).Bytes()
	if err == nil {
		vehicles, decodeErr := decodeVehicles(payload)
		if decodeErr == nil {
			return vehicles, nil
		}
		r.logger.Warn("discarding undecodable vehicle cache", zap.Error(decodeErr))
	} else if err != redis.Nil {
		r.logger.Warn("vehicle cache read failed", zap.Error(err))
	}

	vehicles, err := r.inner.GetAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := encodeVehicles(vehicles); err == nil {
		if err := r.client.Set(ctx, availableKey, payload, r.ttl).Err(); err != nil {
			r.logger.Warn("vehicle cache write failed", zap.Error(err))
		}
	}

	return vehicles, nil
}

// Add writes through and invalidates the listing.
func (r *VehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	if err := r.inner.Add(ctx, v); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Update writes through and invalidates the listing.
func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	if err := r.inner.Update(ctx, v); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// GetByID is a pass-through; single-vehicle reads are not cached.
func (r *VehicleRepository) GetByID(ctx context.Context, id vehicle.ID) (*vehicle.Vehicle, error) {
	return r.inner.GetByID(ctx, id)
}

// GetByStatus is a pass-through.
func (r *VehicleRepository) GetByStatus(ctx context.Context, status vehicle.Status) ([]*vehicle.Vehicle, error) {
	return r.inner.GetByStatus(ctx, status)
}

// GetByModel is a pass-through.
func (r *VehicleRepository) GetByModel(ctx context.Context, model string) ([]*vehicle.Vehicle, error) {
	return r.inner.GetByModel(ctx, model)
}

// ExistsByID is a pass-through.
func (r *VehicleRepository) ExistsByID(ctx context.Context, id vehicle.ID) (bool, error) {
	return r.inner.ExistsByID(ctx, id)
}

func (r *VehicleRepository) invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, availableKey).Err(); err != nil {
		r.logger.Warn("vehicle cache invalidation failed", zap.Error(err))
	}
}

func encodeVehicles(vehicles []*vehicle.Vehicle) ([]byte, error) {
	items := make([]cachedVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		items = append(items, cachedVehicle{
			ID:           v.ID().UUID(),
			Model:        v.Model(),
			CreationDate: v.CreationDate(),
			Status:       string(v.Status()),
		})
	}
	return json.Marshal(items)
}

func decodeVehicles(payload []byte) ([]*vehicle.Vehicle, error) {
	var items []cachedVehicle
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(items))
	for _, item := range items {
		id, err := vehicle.NewID(item.ID)
		if err != nil {
			return nil, err
		}
		v, err := vehicle.Restore(vehicle.Record{
			ID:           id,
			Model:        item.Model,
			CreationDate: item.CreationDate,
			Status:       vehicle.Status(item.Status),
		})
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}
