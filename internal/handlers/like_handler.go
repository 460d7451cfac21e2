package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/dto"
	"vidtube/internal/authctx"
	"vidtube/internal/repository"
	"vidtube/model"
	"vidtube/services"
)

type LikeHandler struct {
	Svc  *services.LikeService
	Repo *repository.LikeRepository
	Log  *logrus.Logger
}

func (h *LikeHandler) toggle(c *fiber.Ctx, target model.LikeTarget, param string) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure(fiber.StatusUnauthorized, "unauthorized"))
	}

	resourceID, err := bson.ObjectIDFromHex(c.Params(param))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(fiber.StatusBadRequest, "invalid "+string(target)+" id"))
	}

	state, err := h.Svc.Toggle(c.Context(), target, resourceID, uid)
	if err != nil {
		return fail(c, h.Log, err)
	}

	msg := "liked successfully"
	if !state.IsActive {
		msg = "unliked successfully"
	}
	resp := dto.LikeToggleResp{
		TargetID:   resourceID.Hex(),
		TargetType: string(target),
		IsLiked:    state.IsActive,
		TotalLikes: state.Total,
	}
	return c.Status(fiber.StatusOK).JSON(dto.Success(fiber.StatusOK, resp, msg))
}

// ToggleVideo godoc
// @Summary  Toggle the actor's like on a video
// @Tags     likes
// @Param    videoId path string true "video id"
// @Success  200 {object} dto.APIResponse
// @Router   /videos/{videoId}/like [post]
func (h *LikeHandler) ToggleVideo(c *fiber.Ctx) error {
	return h.toggle(c, model.TargetVideo, "videoId")
}

// ToggleComment godoc
// @Summary  Toggle the actor's like on a comment
// @Tags     likes
// @Param    commentId path string true "comment id"
// @Success  200 {object} dto.APIResponse
// @Router   /comments/{commentId}/like [post]
func (h *LikeHandler) ToggleComment(c *fiber.Ctx) error {
	return h.toggle(c, model.TargetComment, "commentId")
}

// ToggleTweet godoc
// @Summary  Toggle the actor's like on a tweet
// @Tags     likes
// @Param    tweetId path string true "tweet id"
// @Success  200 {object} dto.APIResponse
// @Router   /tweets/{tweetId}/like [post]
func (h *LikeHandler) ToggleTweet(c *fiber.Ctx) error {
	return h.toggle(c, model.TargetTweet, "tweetId")
}

// LikedVideos godoc
// @Summary  Videos the actor has liked, in like-creation order
// @Tags     likes
// @Success  200 {object} dto.APIResponse
// @Router   /likes/videos [get]
func (h *LikeHandler) LikedVideos(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure(fiber.StatusUnauthorized, "unauthorized"))
	}

	videos, err := h.Repo.LikedVideos(c.Context(), uid)
	if err != nil {
		return fail(c, h.Log, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.Success(fiber.StatusOK, videos, "liked videos fetched successfully"))
}
