package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/DedS3t/monopoly-engine/app/controllers"
	"github.com/DedS3t/monopoly-engine/pkg/routes"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/DedS3t/monopoly-engine/platform/logging"
	"github.com/DedS3t/monopoly-engine/platform/registry"
	socket "github.com/DedS3t/monopoly-engine/platform/sockets"
)

func main() {
	logging.Init()

	db := database.PostgreSQLConnection()
	if err := database.CreateSchema(db); err != nil {
		logging.Get().WithError(err).Fatal("failed creating schema")
	}
	db.Close()

	controllers.Matches = registry.New()

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.MatchRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte("secret"),
	}))

	app.Get("/user/cur", controllers.Cur)
	go socket.CreateSocketIOServer(controllers.Matches)
	app.Listen(":4101")
}
