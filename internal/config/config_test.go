package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.VehicleCacheTTL)
}

func TestLoadVehicleCacheTTL(t *testing.T) {
	t.Setenv("VEHICLE_CACHE_TTL", "2m")
	assert.Equal(t, 2*time.Minute, Load().VehicleCacheTTL)

	t.Setenv("VEHICLE_CACHE_TTL", "not-a-duration")
	assert.Equal(t, 30*time.Second, Load().VehicleCacheTTL)
}
