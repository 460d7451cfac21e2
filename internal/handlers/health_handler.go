package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"vidtube/dto"
)

var startedAt = time.Now()

type healthReport struct {
	DBStatus  string  `json:"dbStatus"`
	Uptime    float64 `json:"uptimeSeconds"`
	Timestamp int64   `json:"timestamp"`
}

// Healthz godoc
// @Summary  Liveness/readiness probe
// @Tags     health
// @Success  200 {object} dto.APIResponse
// @Router   /healthz [get]
func Healthz(client *mongo.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report := healthReport{
			DBStatus:  "db connected",
			Uptime:    time.Since(startedAt).Seconds(),
			Timestamp: time.Now().UnixMilli(),
		}

		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			report.DBStatus = "db disconnected"
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Success(fiber.StatusInternalServerError, report, "health check failed"))
		}
		return c.Status(fiber.StatusOK).JSON(dto.Success(fiber.StatusOK, report, "health check successful"))
	}
}
