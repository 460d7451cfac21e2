package main

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	"vidtube/bootstrap"
	"vidtube/configs"
	"vidtube/database"
	_ "vidtube/docs"
	"vidtube/dto"
	"vidtube/internal/middleware"
	"vidtube/internal/routes"
)

// errorHandler keeps the uniform envelope for errors raised outside the
// handlers themselves (middleware rejections, unmatched routes, panics
// surfaced by recover).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	return c.Status(code).JSON(dto.Failure(code, message))
}

// @title        vidtube API
// @version      1.0
// @description  Comments, likes, subscriptions and dashboard analytics for a video-sharing platform.
// @BasePath     /
func main() {
	log := logrus.New()

	cfg := configs.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Warnf("disconnect mongodb: %v", err)
		}
	}()
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "vidtube",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Client: client,
		DB:     db,
		Log:    log,
	})

	log.Infof("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
