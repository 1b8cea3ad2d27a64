package provider

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/utils"
)

// GetServiceRequests returns the bookings addressed to the logged-in
// provider, newest first, along with the actions each status still allows.
func GetServiceRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	status := c.Query("status")

	query := db.DB.
		Preload("Customer").
		Where("provider_id = ?", userID)
	if status != "" {
		query = query.Where("work_status = ?", models.WorkStatus(status))
	}

	var bookings []models.Booking
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch service requests",
		})
	}

	type requestOut struct {
		models.Booking
		RequestID   string         `json:"request_id"`
		NextActions []models.Event `json:"next_actions"`
	}

	out := make([]requestOut, 0, len(bookings))
	for i, b := range bookings {
		b.Customer.Password = ""
		out = append(out, requestOut{
			Booking:     b,
			RequestID:   utils.FormatRequestID(i),
			NextActions: models.NextActions(b.WorkStatus),
		})
	}

	return c.JSON(fiber.Map{
		"requests": out,
		"count":    len(out),
	})
}

// UpdateBookingStatus applies one state-machine event to a booking. Illegal
// events are rejected without touching the stored status.
func UpdateBookingStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	bookingID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	var input struct {
		Event string `json:"event"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.ProviderID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only update your own bookings",
		})
	}

	if err := booking.ApplyEvent(db.DB, models.Event(input.Event)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"booking":      booking,
		"next_actions": models.NextActions(booking.WorkStatus),
	})
}
