// File: /controllers/valuation_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collateral-api/services"
	"collateral-api/utils"
)

type ValuationController struct {
	valuations *services.ValuationService
}

func NewValuationController(valuations *services.ValuationService) *ValuationController {
	return &ValuationController{valuations: valuations}
}

type ValuationRequest struct {
	VehicleID string `json:"vehicleId"`
	VIN       string `json:"vin"`
}

// ResolveValuation prices a vehicle by id or by VIN.
func (vc *ValuationController) ResolveValuation(c *gin.Context) {
	var req ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if req.VehicleID == "" && req.VIN == "" {
		utils.SendValidationError(c, "vehicleId or vin required")
		return
	}

	ctx := c.Request.Context()
	if req.VehicleID != "" {
		valuation, err := vc.valuations.ValueVehicleByID(ctx, req.VehicleID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, valuation)
		return
	}

	valuation, err := vc.valuations.ValueByVIN(ctx, req.VIN)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, valuation)
}

func (vc *ValuationController) GetValuations(c *gin.Context) {
	ctx := c.Request.Context()

	if vehicleID := c.Query("vehicleId"); vehicleID != "" {
		valuation, err := vc.valuations.FindByVehicle(ctx, vehicleID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, valuation)
		return
	}

	valuations, err := vc.valuations.FindAll(ctx)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch valuations")
		return
	}

	c.JSON(http.StatusOK, valuations)
}
