package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"vidtube/internal/handlers"
)

type Deps struct {
	Client *mongo.Client
	DB     *mongo.Database
	Log    *logrus.Logger
}

// Register wires every resource group plus the health probe.
func Register(app *fiber.App, d Deps) {
	app.Get("/healthz", handlers.Healthz(d.Client))

	CommentRoutes(app, d)
	LikeRoutes(app, d)
	SubscriptionRoutes(app, d)
	DashboardRoutes(app, d)
}
