package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vidtube/dto"
	"vidtube/internal/authctx"
	"vidtube/internal/repository"
)

type DashboardHandler struct {
	Stats  *repository.DashboardRepository
	Videos *repository.VideoRepository
	Log    *logrus.Logger
}

// GetStats godoc
// @Summary  Aggregate stats for the actor's channel
// @Tags     dashboard
// @Success  200 {object} dto.APIResponse
// @Router   /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure(fiber.StatusUnauthorized, "unauthorized"))
	}

	stats, err := h.Stats.ChannelStats(c.Context(), uid)
	if err != nil {
		return fail(c, h.Log, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.Success(fiber.StatusOK, stats, "channel stats fetched successfully"))
}

// GetVideos godoc
// @Summary  Videos uploaded by the actor's channel
// @Tags     dashboard
// @Success  200 {object} dto.APIResponse
// @Router   /dashboard/videos [get]
func (h *DashboardHandler) GetVideos(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure(fiber.StatusUnauthorized, "unauthorized"))
	}

	videos, err := h.Videos.ListByOwner(c.Context(), uid)
	if err != nil {
		return fail(c, h.Log, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.Success(fiber.StatusOK, videos, "videos fetched successfully"))
}
