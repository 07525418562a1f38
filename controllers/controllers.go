// File: /controllers/controllers.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"collateral-api/services"
	"collateral-api/utils"
)

// respondServiceError maps the service failure taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrVehicleNotFound),
		errors.Is(err, services.ErrOfferNotFound),
		errors.Is(err, services.ErrLoanNotFound):
		utils.SendError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrOfferNotActive):
		utils.SendError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &validationErr):
		utils.SendValidationError(c, validationErr.Error())
	default:
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
	}
}
