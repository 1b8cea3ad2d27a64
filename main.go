package main

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/cron"
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/realtime"
	"github.com/meinhoongagan/service-marketplace/redis"
	"github.com/meinhoongagan/service-marketplace/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	hub := realtime.NewHub()
	go hub.Run()

	chatHandler := controllers.NewChatHandler(db.DB, hub, redis.Client)
	go chatHandler.SubscribeAndForward(context.Background())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Local Services Marketplace API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupConsumerRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupChatRoutes(app, chatHandler)

	cron.StartCronJobs()

	app.Listen(":8000")
}
