package db

import (
	"fmt"
	"log"

	"github.com/meinhoongagan/service-marketplace/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.UnavailableSlot{},
		&models.Booking{},
		&models.Review{},
		&models.Earning{},
		&models.ChatMessage{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
