package routes

import (
	"github.com/gofiber/fiber/v2"

	"vidtube/internal/handlers"
	"vidtube/internal/repository"
)

func CommentRoutes(app *fiber.App, d Deps) {
	h := &handlers.CommentHandler{
		Repo: repository.NewCommentRepository(d.DB),
		Log:  d.Log,
	}

	app.Get("/videos/:videoId/comments", h.List)
	app.Post("/videos/:videoId/comments", h.Create)
	app.Patch("/comments/:commentId", h.Update)
	app.Delete("/comments/:commentId", h.Delete)
}
