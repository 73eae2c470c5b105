// internal/handlers/vehicle/vehicle_handler.go
package vehicle

import (
	"net/http"
	"time"

	"fleet-rental-service/internal/pkg/response"
	"fleet-rental-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	createVehicle *usecase.CreateVehicle
	listAvailable *usecase.ListAvailableVehicles
}

func NewVehicleHandler(createVehicle *usecase.CreateVehicle, listAvailable *usecase.ListAvailableVehicles) *VehicleHandler {
	return &VehicleHandler{
		createVehicle: createVehicle,
		listAvailable: listAvailable,
	}
}

type createVehicleRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
	Model     string `json:"model" binding:"required"`
}

type vehicleResponse struct {
	VehicleID    string    `json:"vehicle_id"`
	Model        string    `json:"model"`
	Status       string    `json:"status"`
	CreationDate time.Time `json:"creation_date"`
}

// CreateVehicle adds a new vehicle to the fleet
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result := h.createVehicle.Execute(c.Request.Context(), usecase.CreateVehicleInput{
		VehicleID: req.VehicleID,
		Model:     req.Model,
	})
	if result.Failure != nil {
		renderFailure(c, result.Failure)
		return
	}

	response.Success(c, http.StatusCreated, "vehicle created", vehicleResponse{
		VehicleID:    result.Output.VehicleID,
		Model:        result.Output.Model,
		Status:       result.Output.Status,
		CreationDate: result.Output.CreationDate,
	})
}

// ListAvailableVehicles retrieves every vehicle currently available for rental
func (h *VehicleHandler) ListAvailableVehicles(c *gin.Context) {
	result := h.listAvailable.Execute(c.Request.Context())
	if result.Failure != nil {
		renderFailure(c, result.Failure)
		return
	}

	vehicles := make([]vehicleResponse, 0, len(result.Output.Vehicles))
	for _, v := range result.Output.Vehicles {
		vehicles = append(vehicles, vehicleResponse{
			VehicleID:    v.VehicleID,
			Model:        v.Model,
			Status:       v.Status,
			CreationDate: v.CreationDate,
		})
	}

	response.Success(c, http.StatusOK, "available vehicles retrieved", vehicles)
}

func renderFailure(c *gin.Context, f *usecase.Failure) {
	switch f.Kind {
	case usecase.FailureInvalidInput:
		response.ValidationError(c, f.Message)
	case usecase.FailureConflict:
		response.Conflict(c, f.Message)
	default:
		response.NotFound(c, f.Message)
	}
}
