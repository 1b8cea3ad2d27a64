package provider

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
)

// GetDashboard returns request counts per work-status for the logged-in
// provider plus the review summary.
func GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	statuses := []models.WorkStatus{
		models.StatusPending,
		models.StatusAccepted,
		models.StatusInProgress,
		models.StatusCompleted,
		models.StatusRejected,
	}

	counts := make(map[models.WorkStatus]int64, len(statuses))
	for _, status := range statuses {
		var count int64
		if err := db.DB.Model(&models.Booking{}).
			Where("provider_id = ? AND work_status = ?", userID, status).
			Count(&count).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to count bookings",
			})
		}
		counts[status] = count
	}

	var reviewCount int64
	var avgRating float64
	db.DB.Model(&models.Review{}).Where("provider_id = ?", userID).Count(&reviewCount)
	if reviewCount > 0 {
		db.DB.Model(&models.Review{}).
			Where("provider_id = ?", userID).
			Select("AVG(rating)").
			Scan(&avgRating)
	}

	var serviceCount int64
	db.DB.Model(&models.Service{}).Where("provider_id = ?", userID).Count(&serviceCount)

	return c.JSON(fiber.Map{
		"requests":       counts,
		"services":       serviceCount,
		"reviews":        reviewCount,
		"average_rating": avgRating,
	})
}
