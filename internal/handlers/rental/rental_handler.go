// internal/handlers/rental/rental_handler.go
package rental

import (
	"net/http"
	"time"

	"fleet-rental-service/internal/pkg/response"
	"fleet-rental-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	rentVehicle   *usecase.RentVehicle
	returnVehicle *usecase.ReturnVehicle
}

func NewRentalHandler(rentVehicle *usecase.RentVehicle, returnVehicle *usecase.ReturnVehicle) *RentalHandler {
	return &RentalHandler{
		rentVehicle:   rentVehicle,
		returnVehicle: returnVehicle,
	}
}

type rentVehicleRequest struct {
	CustomerID    string    `json:"customer_id" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required"`
	VehicleID     string    `json:"vehicle_id" binding:"required"`
	StartDate     time.Time `json:"start_date" binding:"required"`
}

type rentalResponse struct {
	RentalID   string    `json:"rental_id"`
	CustomerID string    `json:"customer_id"`
	VehicleID  string    `json:"vehicle_id"`
	StartDate  time.Time `json:"start_date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type returnVehicleRequest struct {
	EndDate time.Time `json:"end_date" binding:"required"`
}

type returnedRentalResponse struct {
	RentalID       string    `json:"rental_id"`
	CustomerID     string    `json:"customer_id"`
	VehicleID      string    `json:"vehicle_id"`
	VehicleModel   string    `json:"vehicle_model"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"`
	DurationInDays int       `json:"duration_in_days"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RentVehicle creates an active rental for a customer
func (h *RentalHandler) RentVehicle(c *gin.Context) {
	var req rentVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result := h.rentVehicle.Execute(c.Request.Context(), usecase.RentVehicleInput{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		VehicleID:     req.VehicleID,
		StartDate:     req.StartDate,
	})
	if result.Failure != nil {
		renderFailure(c, result.Failure)
		return
	}

	response.Success(c, http.StatusCreated, "vehicle rented", rentalResponse{
		RentalID:   result.Output.RentalID,
		CustomerID: result.Output.CustomerID,
		VehicleID:  result.Output.VehicleID,
		StartDate:  result.Output.StartDate,
		Status:     result.Output.Status,
		CreatedAt:  result.Output.CreatedAt,
	})
}

// ReturnVehicle completes an active rental and frees the vehicle
func (h *RentalHandler) ReturnVehicle(c *gin.Context) {
	var req returnVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result := h.returnVehicle.Execute(c.Request.Context(), usecase.ReturnVehicleInput{
		RentalID: c.Param("rental_id"),
		EndDate:  req.EndDate,
	})
	if result.Failure != nil {
		renderFailure(c, result.Failure)
		return
	}

	response.Success(c, http.StatusOK, "vehicle returned", returnedRentalResponse{
		RentalID:       result.Output.RentalID,
		CustomerID:     result.Output.CustomerID,
		VehicleID:      result.Output.VehicleID,
		VehicleModel:   result.Output.VehicleModel,
		StartDate:      result.Output.StartDate,
		EndDate:        result.Output.EndDate,
		Status:         result.Output.Status,
		DurationInDays: result.Output.DurationInDays,
		UpdatedAt:      result.Output.UpdatedAt,
	})
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
