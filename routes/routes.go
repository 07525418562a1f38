// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"collateral-api/config"
	"collateral-api/controllers"
	"collateral-api/middleware"
	"collateral-api/repositories"
	"collateral-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	// Repositories
	vehicleRepo := repositories.NewVehicleRepository(db)
	valuationRepo := repositories.NewValuationRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Services
	vinLookup := services.NewRapidAPIVinClient(cfg, logger)
	valuationService := services.NewValuationService(vehicleRepo, valuationRepo, vinLookup, logger)
	offerService := services.NewOfferService(offerRepo, vehicleRepo, logger)

	var notifier services.ReviewNotifier
	emailService := services.NewEmailService(cfg, logger)
	if emailService.Enabled() {
		notifier = emailService
	}
	loanService := services.NewLoanService(loanRepo, offerRepo, notifier, logger)

	// Controllers
	vehicleController := controllers.NewVehicleController(vehicleRepo)
	valuationController := controllers.NewValuationController(valuationService)
	offerController := controllers.NewOfferController(offerService)
	loanController := controllers.NewLoanController(loanService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RequestID())
	v1.Use(middleware.RateLimit(120, 20))
	v1.Use(middleware.ValidateJSON())
	{
		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("/", vehicleController.GetVehicles)
			vehicles.POST("/", vehicleController.CreateVehicle)
			vehicles.GET("/:id", vehicleController.GetVehicle)
		}

		valuations := v1.Group("/valuations")
		{
			valuations.GET("/", valuationController.GetValuations)
			valuations.POST("/", valuationController.ResolveValuation)
		}

		offers := v1.Group("/offers")
		{
			offers.GET("/", offerController.GetOffers)
			offers.POST("/", offerController.CreateOffer)
			offers.GET("/:id", offerController.GetOffer)
			offers.PATCH("/:id/status", offerController.UpdateOfferStatus)
		}

		loans := v1.Group("/loans")
		{
			loans.GET("/", loanController.GetLoans)
			loans.POST("/", loanController.Apply)
			loans.GET("/:id", loanController.GetLoan)
			loans.PATCH("/:id/status", loanController.UpdateLoanStatus)
		}
	}
}
