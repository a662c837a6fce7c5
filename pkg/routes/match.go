package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DedS3t/monopoly-engine/app/controllers"
)

func MatchRoutes(a *fiber.App) {
	route := a.Group("/match")

	route.Post("/create", controllers.CreateMatch)
	route.Get("/state", controllers.GetMatchState)
	route.Get("/ranking", controllers.GetMatchRanking)
	route.Post("/save", controllers.SaveMatch)
	route.Post("/load", controllers.LoadMatch)
	route.Post("/finish", controllers.FinishMatch)
}
