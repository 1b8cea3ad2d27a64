package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for pending
// booking reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every 30 minutes to nudge providers about stale pending requests
	_, err := c.AddFunc("*/30 * * * *", sendPendingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for pending booking reminders")
}

// sendPendingReminders emails providers about bookings that have sat in
// Pending for more than an hour
func sendPendingReminders() {
	var bookings []models.Booking
	cutoff := time.Now().Add(-1 * time.Hour)

	err := db.DB.Preload("Customer").Preload("Provider").
		Where("work_status = ? AND created_at < ?", models.StatusPending, cutoff).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching pending bookings for reminders: %v", err)
		return
	}

	fmt.Printf("Found %d pending bookings for reminders\n", len(bookings))

	for _, booking := range bookings {
		err := utils.SendPendingBookingReminder(
			booking.Provider.Email,
			booking.Customer.Name,
			booking.ServiceName,
			booking.Date,
			booking.TimeSlot,
		)
		if err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Provider.Email)
	}
}
