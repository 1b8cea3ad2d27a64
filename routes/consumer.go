package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/controllers/consumer"
	"github.com/meinhoongagan/service-marketplace/middleware"
	"github.com/meinhoongagan/service-marketplace/models"
)

// SetupConsumerRoutes configures all customer facing routes
func SetupConsumerRoutes(app *fiber.App) {
	consumerGroup := app.Group("/consumer", middleware.Protected())

	// Browsing providers is open to any logged-in user
	consumerGroup.Get("/providers", consumer.GetAllProviders)
	consumerGroup.Get("/providers/:id", consumer.GetProviderDetails)
	consumerGroup.Get("/providers/:id/availability", consumer.GetProviderAvailability)
	consumerGroup.Get("/providers/:id/reviews", consumer.GetProviderReviews)

	// Booking and review actions require the customer role
	customerOnly := consumerGroup.Group("", middleware.RequireRole(models.RoleCustomer))
	customerOnly.Post("/bookings", consumer.CreateBooking)
	customerOnly.Get("/bookings", consumer.GetBookingHistory)
	customerOnly.Delete("/bookings/:id", consumer.CancelBooking)
	customerOnly.Post("/reviews", consumer.CreateReview)
	customerOnly.Patch("/profile", consumer.UpdateProfile)
	customerOnly.Post("/profile/picture", consumer.UpdateProfilePicture)
}
