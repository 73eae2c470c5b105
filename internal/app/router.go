// internal/app/router.go
package app

import (
	rentalHandler "fleet-rental-service/internal/handlers/rental"
	vehicleHandler "fleet-rental-service/internal/handlers/vehicle"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	VehicleHandler *vehicleHandler.VehicleHandler
	RentalHandler  *rentalHandler.RentalHandler
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Fleet ====================
	vehicles := api.Group("/vehicles")
	{
		vehicles.POST("", h.VehicleHandler.CreateVehicle)
		vehicles.GET("/available", h.VehicleHandler.ListAvailableVehicles)
	}

	// ==================== Rentals ====================
	rentals := api.Group("/rentals")
	{
		rentals.POST("", h.RentalHandler.RentVehicle)
		rentals.PUT("/:rental_id/return", h.RentalHandler.ReturnVehicle)
	}
}
