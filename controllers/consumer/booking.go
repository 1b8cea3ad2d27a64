package consumer

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/utils"
)

// CreateBooking books a service for the logged-in customer. The requested
// slot is re-checked server-side against the provider's unavailability and
// existing bookings before anything is written.
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		ServiceID   uint   `json:"service_id"`
		Date        string `json:"date"`
		TimeSlot    string `json:"time_slot"`
		PaymentMode string `json:"payment_mode"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	mode := models.PaymentMode(input.PaymentMode)
	if mode != models.PaymentCash && mode != models.PaymentPhonePe && mode != models.PaymentGooglePay {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please select a payment mode",
		})
	}

	if input.Date == "" || input.TimeSlot == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please select a date and time slot before booking",
		})
	}

	validSlot := false
	for _, label := range utils.TimeSlots() {
		if label == input.TimeSlot {
			validSlot = true
			break
		}
	}
	if !validSlot {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown time slot",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	// Reject before any write if the slot is taken
	available, err := utils.CheckAvailability(service.ProviderID, input.Date, input.TimeSlot)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check availability",
		})
	}
	if !available {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "The selected time slot is not available",
		})
	}

	booking := models.Booking{
		CustomerID:    userID,
		ProviderID:    service.ProviderID,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		Price:         service.Price,
		Date:          input.Date,
		TimeSlot:      input.TimeSlot,
		PaymentMode:   mode,
		PaymentStatus: "Unpaid",
		WorkStatus:    models.StatusPending,
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create booking",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetBookingHistory returns the customer's bookings, newest first, with the
// actions each one still allows.
func GetBookingHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var bookings []models.Booking
	if err := db.DB.
		Preload("Provider").
		Where("customer_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}

	type bookingOut struct {
		models.Booking
		RequestID      string `json:"request_id"`
		CanCancel      bool   `json:"can_cancel"`
		ReviewUnlocked bool   `json:"review_unlocked"`
	}

	out := make([]bookingOut, 0, len(bookings))
	for i, b := range bookings {
		b.Provider.Password = ""
		out = append(out, bookingOut{
			Booking:        b,
			RequestID:      utils.FormatRequestID(i),
			CanCancel:      b.CanCancel(),
			ReviewUnlocked: b.ReviewUnlocked(),
		})
	}

	return c.JSON(fiber.Map{
		"bookings": out,
		"count":    len(out),
	})
}

// CancelBooking removes a booking outright. This is a deletion, not a
// status transition, and is only allowed while the booking is non-terminal.
func CancelBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.CustomerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only cancel your own bookings",
		})
	}

	if !booking.CanCancel() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Completed or rejected bookings cannot be canceled",
		})
	}

	if err := db.DB.Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to cancel booking",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Booking canceled successfully",
	})
}
