package vehicle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainvehicle "fleet-rental-service/internal/domain/vehicle"
	"fleet-rental-service/internal/repository/memory"
	"fleet-rental-service/internal/service/fleet"
	"fleet-rental-service/internal/usecase"
)

func newRouter() (*gin.Engine, *memory.VehicleRepository) {
	gin.SetMode(gin.TestMode)

	vehicleRepo := memory.NewVehicleRepository()
	service := fleet.NewRentalService(
		vehicleRepo,
		memory.NewCustomerRepository(),
		memory.NewRentalRepository(),
		zap.NewNop(),
	)
	handler := NewVehicleHandler(
		usecase.NewCreateVehicle(service, memory.NewUnitOfWork()),
		usecase.NewListAvailableVehicles(vehicleRepo),
	)

	r := gin.New()
	r.POST("/api/v1/vehicles", handler.CreateVehicle)
	r.GET("/api/v1/vehicles/available", handler.ListAvailableVehicles)
	return r, vehicleRepo
}

func TestCreateVehicleEndpoint(t *testing.T) {
	router, _ := newRouter()

	body := `{"vehicle_id":"` + domainvehicle.NextID().String() + `","model":"Toyota Corolla"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Model  string `json:"model"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Toyota Corolla", resp.Data.Model)
	assert.Equal(t, "Available", resp.Data.Status)
}

func TestCreateVehicleEndpointInvalidModel(t *testing.T) {
	router, _ := newRouter()

	body := `{"vehicle_id":"` + domainvehicle.NextID().String() + `","model":" "}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVehicleEndpointMissingFields(t *testing.T) {
	router, _ := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAvailableVehiclesEndpoint(t *testing.T) {
	router, vehicleRepo := newRouter()

	v, err := domainvehicle.New(domainvehicle.NextID(), "Ford Focus")
	require.NoError(t, err)
	require.NoError(t, vehicleRepo.Add(context.Background(), v))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles/available", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			VehicleID string `json:"vehicle_id"`
			Model     string `json:"model"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, v.ID().String(), resp.Data[0].VehicleID)
	assert.Equal(t, "Ford Focus", resp.Data[0].Model)
}
