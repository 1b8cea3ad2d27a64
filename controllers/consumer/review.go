package consumer

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
)

// CreateReview lets a customer review a booking they own once the provider
// has completed it.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var input struct {
		BookingID uint   `json:"booking_id"`
		Message   string `json:"message"`
		Rating    int    `json:"rating"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Message == "" || input.Rating == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide a message and a rating",
		})
	}
	if len([]rune(input.Message)) > 200 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Review message must not exceed 200 characters",
		})
	}
	if input.Rating < 1 || input.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rating must be between 1 and 5",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, input.BookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.CustomerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only review your own bookings",
		})
	}

	if !booking.ReviewUnlocked() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Reviews are only allowed once the booking is completed",
		})
	}

	review := models.Review{
		Rating:     input.Rating,
		Message:    input.Message,
		ProviderID: booking.ProviderID,
		CustomerID: userID,
		ServiceID:  booking.ServiceID,
		BookingID:  booking.ID,
	}

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this booking",
		})
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetProviderReviews lists the reviews left for a provider
func GetProviderReviews(c *fiber.Ctx) error {
	id := c.Params("id")

	var reviews []models.Review
	if err := db.DB.
		Preload("Customer").
		Where("provider_id = ?", id).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	for i := range reviews {
		reviews[i].Customer.Password = ""
	}

	return c.JSON(reviews)
}
