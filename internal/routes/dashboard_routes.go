package routes

import (
	"github.com/gofiber/fiber/v2"

	"vidtube/internal/handlers"
	"vidtube/internal/repository"
)

func DashboardRoutes(app *fiber.App, d Deps) {
	h := &handlers.DashboardHandler{
		Stats:  repository.NewDashboardRepository(d.DB),
		Videos: repository.NewVideoRepository(d.DB),
		Log:    d.Log,
	}

	app.Get("/dashboard/stats", h.GetStats)
	app.Get("/dashboard/videos", h.GetVideos)
}
