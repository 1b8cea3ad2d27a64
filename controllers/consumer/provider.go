package consumer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/utils"
)

// GetAllProviders returns all service providers with their services and
// unavailable slots
func GetAllProviders(c *fiber.Ctx) error {
	var providers []models.User

	// Get pagination parameters
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	// Calculate offset
	offset := (page - 1) * limit

	if err := db.DB.
		Preload("Services").
		Preload("UnavailableSlots").
		Where("role = ?", models.RoleProvider).
		Limit(limit).
		Offset(offset).
		Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch providers",
		})
	}

	// Count total records for pagination
	var count int64
	db.DB.Model(&models.User{}).
		Where("role = ?", models.RoleProvider).
		Count(&count)

	for i := range providers {
		providers[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"providers": providers,
		"total":     count,
		"page":      page,
		"limit":     limit,
		"pages":     (int(count) + limit - 1) / limit,
	})
}

// GetProviderDetails returns details for a specific provider
func GetProviderDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var provider models.User
	if err := db.DB.
		Preload("Services").
		Preload("Reviews").
		First(&provider, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	if provider.Role != models.RoleProvider {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User is not a service provider",
		})
	}

	// Remove sensitive information
	provider.Password = ""

	return c.JSON(provider)
}

// GetProviderAvailability returns the bookable time slots for a provider on
// a given date. An empty list means the day is fully booked, which is
// different from an error.
func GetProviderAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date query parameter is required (dd-mm-yyyy)",
		})
	}

	var provider models.User
	if err := db.DB.First(&provider, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	var unavailable []models.UnavailableSlot
	if err := db.DB.Where("provider_id = ?", provider.ID).Find(&unavailable).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch unavailable slots",
		})
	}

	available := utils.AvailableSlots(date, unavailable)

	return c.JSON(fiber.Map{
		"date":            date,
		"available_slots": available,
		"count":           len(available),
	})
}
