// File: /controllers/loan_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collateral-api/models"
	"collateral-api/services"
	"collateral-api/utils"
)

type LoanController struct {
	loans *services.LoanService
}

func NewLoanController(loans *services.LoanService) *LoanController {
	return &LoanController{loans: loans}
}

type LoanApplyRequest struct {
	ApplicantName        string  `json:"applicantName" binding:"required"`
	ApplicantIncome      float64 `json:"applicantIncome" binding:"required,gt=0"`
	ApplicantMonthlyDebt float64 `json:"applicantMonthlyDebt" binding:"gte=0"`
	OfferID              string  `json:"offerId" binding:"required"`
}

type UpdateLoanStatusRequest struct {
	Status      models.LoanStatus `json:"status" binding:"required"`
	ReviewNotes *string           `json:"reviewNotes"`
}

func (lc *LoanController) Apply(c *gin.Context) {
	var req LoanApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	loan, err := lc.loans.Apply(c.Request.Context(), services.LoanApplication{
		ApplicantName:        req.ApplicantName,
		ApplicantIncome:      req.ApplicantIncome,
		ApplicantMonthlyDebt: req.ApplicantMonthlyDebt,
		OfferID:              req.OfferID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, loan)
}

func (lc *LoanController) GetLoans(c *gin.Context) {
	loans, err := lc.loans.FindAll(c.Request.Context())
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch loans")
		return
	}

	c.JSON(http.StatusOK, loans)
}

func (lc *LoanController) GetLoan(c *gin.Context) {
	loan, err := lc.loans.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, loan)
}

func (lc *LoanController) UpdateLoanStatus(c *gin.Context) {
	var req UpdateLoanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	loan, err := lc.loans.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.ReviewNotes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, loan)
}
