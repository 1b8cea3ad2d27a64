package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/middleware"
)

// SetupChatRoutes configures the chat history, send, and push endpoints
func SetupChatRoutes(app *fiber.App, h *controllers.ChatHandler) {
	chat := app.Group("/chat", middleware.Protected())
	chat.Get("/:peerId/messages", h.GetMessages)
	chat.Post("/:peerId/messages", h.SendMessage)

	// Websocket upgrade for push delivery of new messages
	chat.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	chat.Get("/ws/:conversationKey", h.Websocket())
}
