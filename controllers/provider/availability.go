package provider

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/utils"
	"gorm.io/gorm"
)

// GetAvailabilityGrid returns the provider's 10-day availability grid: for
// each date, which of the 18 hourly slots are marked unavailable.
func GetAvailabilityGrid(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var unavailable []models.UnavailableSlot
	if err := db.DB.Where("provider_id = ?", userID).Find(&unavailable).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch unavailable slots",
		})
	}

	days := utils.Next10Days()
	slots := utils.TimeSlots()

	grid := make(map[string]map[string]bool, len(days))
	for _, date := range days {
		row := make(map[string]bool, len(slots))
		for _, slot := range slots {
			row[slot] = utils.IsSlotUnavailable(date, slot, unavailable)
		}
		grid[date] = row
	}

	return c.JSON(fiber.Map{
		"days":        days,
		"time_slots":  slots,
		"unavailable": grid,
	})
}

// ToggleSlot flips the unavailability of one (date, time-slot) cell:
// insert-if-absent, delete-if-present. Toggling twice restores the original
// state.
func ToggleSlot(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		Date     string `json:"date"`
		TimeSlot string `json:"time_slot"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Date == "" || input.TimeSlot == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date and time_slot are required",
		})
	}

	var existing models.UnavailableSlot
	err := db.DB.
		Where("provider_id = ? AND date = ? AND time_slot = ?", userID, input.Date, input.TimeSlot).
		First(&existing).Error

	switch {
	case err == nil:
		// Present: make the slot available again
		if err := db.DB.Unscoped().Delete(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to remove slot",
			})
		}
		return c.JSON(fiber.Map{
			"date":        input.Date,
			"time_slot":   input.TimeSlot,
			"unavailable": false,
		})

	case errors.Is(err, gorm.ErrRecordNotFound):
		slot := models.UnavailableSlot{
			ProviderID: userID,
			Date:       input.Date,
			TimeSlot:   input.TimeSlot,
		}
		if err := db.DB.Create(&slot).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to mark slot unavailable",
			})
		}
		return c.JSON(fiber.Map{
			"date":        input.Date,
			"time_slot":   input.TimeSlot,
			"unavailable": true,
		})

	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check slot",
		})
	}
}
