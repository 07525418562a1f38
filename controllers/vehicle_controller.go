// File: /controllers/vehicle_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"collateral-api/models"
	"collateral-api/repositories"
	"collateral-api/utils"
)

type VehicleController struct {
	vehicles *repositories.VehicleRepository
}

func NewVehicleController(vehicles *repositories.VehicleRepository) *VehicleController {
	return &VehicleController{vehicles: vehicles}
}

type CreateVehicleRequest struct {
	VIN     *string `json:"vin"`
	Make    string  `json:"make" binding:"required"`
	Model   string  `json:"model" binding:"required"`
	Year    int     `json:"year" binding:"required,gte=1900"`
	Mileage int     `json:"mileage" binding:"gte=0"`
}

func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	vehicle := models.Vehicle{
		ID:      uuid.New().String(),
		VIN:     req.VIN,
		Make:    req.Make,
		Model:   req.Model,
		Year:    req.Year,
		Mileage: req.Mileage,
	}

	if err := vc.vehicles.Create(c.Request.Context(), &vehicle); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create vehicle")
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (vc *VehicleController) GetVehicles(c *gin.Context) {
	vehicles, err := vc.vehicles.FindAll(c.Request.Context())
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch vehicles")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func (vc *VehicleController) GetVehicle(c *gin.Context) {
	vehicle, err := vc.vehicles.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch vehicle")
		return
	}
	if vehicle == nil {
		utils.SendError(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}
