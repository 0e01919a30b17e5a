package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/tucita/tucita-api/booking"
	"github.com/tucita/tucita-api/cron"
	"github.com/tucita/tucita-api/db"
	"github.com/tucita/tucita-api/redis"
	"github.com/tucita/tucita-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	// Booking wizards live in redis and expire with their TTL.
	booking.Sessions = booking.NewRedisStore(redis.Client, 30*time.Minute)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("TuCita API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupProfessionalRoutes(app)
	routes.SetupConsumerRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
