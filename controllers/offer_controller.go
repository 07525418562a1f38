// File: /controllers/offer_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collateral-api/models"
	"collateral-api/services"
	"collateral-api/utils"
)

type OfferController struct {
	offers *services.OfferService
}

func NewOfferController(offers *services.OfferService) *OfferController {
	return &OfferController{offers: offers}
}

type CreateOfferRequest struct {
	VehicleID  string  `json:"vehicleId" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	TermMonths int     `json:"termMonths" binding:"required,gte=12,lte=84"`
	APR        float64 `json:"apr" binding:"gte=0,lte=1"`
}

type UpdateOfferStatusRequest struct {
	Status models.OfferStatus `json:"status" binding:"required"`
}

func (oc *OfferController) CreateOffer(c *gin.Context) {
	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	offer, err := oc.offers.CreateOffer(c.Request.Context(), req.VehicleID, req.Amount, req.TermMonths, req.APR)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, offer)
}

func (oc *OfferController) GetOffers(c *gin.Context) {
	vehicleID := c.Query("vehicleId")
	status := models.OfferStatus(c.Query("status"))

	offers, err := oc.offers.ListOffers(c.Request.Context(), vehicleID, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, offers)
}

func (oc *OfferController) GetOffer(c *gin.Context) {
	offer, err := oc.offers.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}

func (oc *OfferController) UpdateOfferStatus(c *gin.Context) {
	var req UpdateOfferStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	offer, err := oc.offers.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}
