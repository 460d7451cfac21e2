package routes

import (
	"github.com/gofiber/fiber/v2"

	"vidtube/internal/handlers"
	"vidtube/internal/repository"
	"vidtube/services"
)

func SubscriptionRoutes(app *fiber.App, d Deps) {
	repo := repository.NewSubscriptionRepository(d.DB)
	h := &handlers.SubscriptionHandler{
		Svc:  services.NewSubscriptionService(repo),
		Repo: repo,
		Log:  d.Log,
	}

	app.Post("/channels/:channelId/subscribe", h.Toggle)
	app.Get("/channels/:channelId/subscribers", h.Subscribers)
	app.Get("/subscribers/:subscriberId/channels", h.SubscribedChannels)
}
