package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vidtube/dto"
	"vidtube/internal/apierr"
)

// fail converts any error into the uniform failure envelope. The wrapped
// cause is logged for 5xx results but never leaves the process.
func fail(c *fiber.Ctx, log *logrus.Logger, err error) error {
	ae := apierr.From(err)
	if ae.Code >= fiber.StatusInternalServerError && log != nil {
		log.WithError(err).
			WithField("request_id", c.Locals("request_id")).
			WithField("path", c.Path()).
			Error("request failed")
	}
	return c.Status(ae.Code).JSON(dto.Failure(ae.Code, ae.Message))
}
