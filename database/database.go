// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"collateral-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Vehicle{},
		&models.Valuation{},
		&models.Offer{},
		&models.Loan{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// The one-valuation-per-vehicle invariant is enforced by the database,
	// not by read-then-write in application code. AutoMigrate already
	// creates the unique index from the model tag; keep an explicit
	// statement as well so hand-managed schemas stay correct.
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS uk_valuations_vehicle ON valuations(vehicle_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create unique index for valuations: %v\n", err)
	}

	// Offer listing by vehicle + status
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_offers_vehicle_status ON offers(vehicle_id, status)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for offers: %v\n", err)
	}

	// Review queue ordering
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_loans_status_created ON loans(status, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for loans: %v\n", err)
	}

	return nil
}

// SeedData populates the database with sample collateral for development.
func SeedData(db *gorm.DB) error {
	var vehicleCount int64
	db.Model(&models.Vehicle{}).Count(&vehicleCount)

	if vehicleCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	vin1 := "5FRYD4H66GB592800"
	vin2 := "1FTFW1ET4EFA00001"

	testVehicles := []models.Vehicle{
		{
			ID:      "vehicle-1",
			VIN:     &vin1,
			Make:    "Acura",
			Model:   "MDX",
			Year:    2016,
			Mileage: 0,
		},
		{
			ID:      "vehicle-2",
			VIN:     &vin2,
			Make:    "Ford",
			Model:   "F-150",
			Year:    2018,
			Mileage: 60000,
		},
	}

	for _, vehicle := range testVehicles {
		if err := db.Create(&vehicle).Error; err != nil {
			fmt.Printf("Warning: Could not create test vehicle %s: %v\n", vehicle.Model, err)
		}
	}

	fmt.Println("Database seeded with sample vehicles")
	return nil
}
