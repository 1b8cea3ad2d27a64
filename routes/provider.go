package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/service-marketplace/controllers/provider"
	"github.com/meinhoongagan/service-marketplace/middleware"
	"github.com/meinhoongagan/service-marketplace/models"
)

// SetupProviderRoutes configures all provider facing routes
func SetupProviderRoutes(app *fiber.App) {
	providerGroup := app.Group("/provider",
		middleware.Protected(), middleware.RequireRole(models.RoleProvider))

	providerGroup.Get("/dashboard", provider.GetDashboard)

	providerGroup.Get("/requests", provider.GetServiceRequests)
	providerGroup.Patch("/requests/:id/status", provider.UpdateBookingStatus)

	providerGroup.Get("/availability", provider.GetAvailabilityGrid)
	providerGroup.Post("/availability/toggle", provider.ToggleSlot)

	providerGroup.Get("/earnings", provider.GetEarnings)
	providerGroup.Post("/earnings/withdraw", provider.Withdraw)
}
