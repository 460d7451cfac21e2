package routes

import (
	"github.com/gofiber/fiber/v2"

	"vidtube/internal/handlers"
	"vidtube/internal/repository"
	"vidtube/services"
)

func LikeRoutes(app *fiber.App, d Deps) {
	repo := repository.NewLikeRepository(d.DB)
	h := &handlers.LikeHandler{
		Svc:  services.NewLikeService(repo),
		Repo: repo,
		Log:  d.Log,
	}

	app.Post("/videos/:videoId/like", h.ToggleVideo)
	app.Post("/comments/:commentId/like", h.ToggleComment)
	app.Post("/tweets/:tweetId/like", h.ToggleTweet)
	app.Get("/likes/videos", h.LikedVideos)
}
