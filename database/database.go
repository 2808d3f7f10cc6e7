// File: /database/database.go
package database

import (
	"fmt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"radlog-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.WasteRecord{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData can be used to populate the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	// Check if we already have users
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	org := "Demo Hospital Nuclear Medicine"

	// Create sample users for testing
	testUsers := []models.User{
		{
			ID:            "user-1",
			Name:          "John Doe",
			Email:         "john@example.com",
			Password:      "$2a$10$dummy", // This should be properly hashed in real scenarios
			EmailVerified: true,
			Organization:  &org,
		},
		{
			ID:            "user-2",
			Name:          "Jane Smith",
			Email:         "jane@example.com",
			Password:      "$2a$10$dummy",
			EmailVerified: true,
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", user.Email, err)
		}
	}

	// Create a sample calculation so the history view has something to show
	sample := models.WasteRecord{
		OwnerID:                "user-1",
		Isotope:                "F-18",
		GammaConstant:          0.1879,
		DistanceMeters:         0.3,
		DoseRateMicroSvPerHour: 0.08,
		MassGrams:              10000,
		ActivityMBq:            0.0038318254390633316,
		ActivityBq:             3831.8254390633315,
		DensityBqPerGram:       0.38318254390633317,
	}

	if err := db.Create(&sample).Error; err != nil {
		fmt.Printf("Warning: Could not create sample waste record: %v\n", err)
	}

	fmt.Println("Database seeded with test data")
	return nil
}
