package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/dto"
	"vidtube/internal/authctx"
	"vidtube/internal/repository"
	"vidtube/services"
)

type SubscriptionHandler struct {
	Svc  *services.SubscriptionService
	Repo *repository.SubscriptionRepository
	Log  *logrus.Logger
}

// Toggle godoc
// @Summary  Toggle the actor's subscription to a channel
// @Tags     subscriptions
// @Param    channelId path string true "channel (user) id"
// @Success  200 {object} dto.APIResponse
// @Router   /channels/{channelId}/subscribe [post]
func (h *SubscriptionHandler) Toggle(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure(fiber.StatusUnauthorized, "unauthorized"))
	}

	channelID, err := bson.ObjectIDFromHex(c.Params("channelId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(fiber.StatusBadRequest, "invalid channel id"))
	}

	state, err := h.Svc.Toggle(c.Context(), channelID, uid)
	if err != nil {
		return fail(c, h.Log, err)
	}

	msg := "subscribed successfully"
	if !state.IsActive {
		msg = "unsubscribed successfully"
	}
	resp := dto.SubscriptionToggleResp{
		ChannelID:        channelID.Hex(),
		IsSubscribed:     state.IsActive,
		TotalSubscribers: state.Total,
	}
	return c.Status(fiber.StatusOK).JSON(dto.Success(fiber.StatusOK, resp, msg))
}

// Subscribers godoc
// @Summary  Profiles subscribed to a channel
// @Tags     subscriptions
// @Param    channelId path string true "channel (user) id"
// @Success  200 {object} dto.APIResponse
// @Router   /channels/{channelId}/subscribers [get]
func (h *SubscriptionHandler) Subscribers(c *fiber.Ctx) error {
	if _, ok := authctx.UserIDFrom(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure(fiber.StatusUnauthorized, "unauthorized"))
	}

	channelID, err := bson.ObjectIDFromHex(c.Params("channelId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(fiber.StatusBadRequest, "invalid channel id"))
	}

	profiles, err := h.Repo.Subscribers(c.Context(), channelID)
	if err != nil {
		return fail(c, h.Log, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.Success(fiber.StatusOK, profiles, "subscribers fetched successfully"))
}

// SubscribedChannels godoc
// @Summary  Channels a subscriber follows
// @Tags     subscriptions
// @Param    subscriberId path string true "subscriber (user) id"
// @Success  200 {object} dto.APIResponse
// @Router   /subscribers/{subscriberId}/channels [get]
func (h *SubscriptionHandler) SubscribedChannels(c *fiber.Ctx) error {
	if _, ok := authctx.UserIDFrom(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure(fiber.StatusUnauthorized, "unauthorized"))
	}

	subscriberID, err := bson.ObjectIDFromHex(c.Params("subscriberId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(fiber.StatusBadRequest, "invalid subscriber id"))
	}

	profiles, err := h.Repo.SubscribedChannels(c.Context(), subscriberID)
	if err != nil {
		return fail(c, h.Log, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.Success(fiber.StatusOK, profiles, "subscribed channels fetched successfully"))
}
