package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/configs"
	"vidtube/dto"
	"vidtube/internal/authctx"
	"vidtube/internal/repository"
)

type CommentHandler struct {
	Repo *repository.CommentRepository
	Log  *logrus.Logger
}

// pageParams reads 1-based page/limit query params and clamps them to the
// configured bounds.
func pageParams(c *fiber.Ctx) (page, limit int64) {
	page = int64(c.QueryInt("page", int(configs.DefaultPage)))
	if page < 1 {
		page = configs.DefaultPage
	}
	limit = int64(c.QueryInt("limit", int(configs.DefaultLimitComments)))
	if limit <= 0 {
		limit = configs.DefaultLimitComments
	}
	if limit > configs.MaxLimitComments {
		limit = configs.MaxLimitComments
	}
	return page, limit
}

// List godoc
// @Summary  Paginated comments of a video, newest first
// @Tags     comments
// @Param    videoId path  string true  "video id"
// @Param    page    query int    false "1-based page"
// @Param    limit   query int    false "page size"
// @Success  200 {object} dto.APIResponse
// @Router   /videos/{videoId}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	videoID, err := bson.ObjectIDFromHex(c.Params("videoId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(fiber.StatusBadRequest, "invalid video id"))
	}
	page, limit := pageParams(c)

	exists, err := h.Repo.VideoExists(c.Context(), videoID)
	if err != nil {
		return fail(c, h.Log, err)
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(dto.Failure(fiber.StatusNotFound, "video not found"))
	}

	items, total, err := h.Repo.ListByVideo(c.Context(), videoID, page, limit)
	if err != nil {
		return fail(c, h.Log, err)
	}

	msg := "comments fetched successfully"
	if len(items) == 0 {
		msg = "No comments found"
	}
	resp := dto.CommentListResp{
		Comments:      items,
		TotalComments: total,
		Page:          page,
		Limit:         limit,
	}
	return c.Status(fiber.StatusOK).JSON(dto.Success(fiber.StatusOK, resp, msg))
}

// Create godoc
// @Summary  Add a comment to a video
// @Tags     comments
// @Param    videoId path string               true "video id"
// @Param    body    body dto.CreateCommentReq true "comment content"
// @Success  201 {object} dto.APIResponse
// @Router   /videos/{videoId}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure(fiber.StatusUnauthorized, "unauthorized"))
	}

	videoID, err := bson.ObjectIDFromHex(c.Params("videoId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(fiber.StatusBadRequest, "invalid video id"))
	}

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(fiber.StatusBadRequest, "content is required"))
	}

	exists, err := h.Repo.VideoExists(c.Context(), videoID)
	if err != nil {
		return fail(c, h.Log, err)
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(dto.Failure(fiber.StatusNotFound, "video not found"))
	}

	com, err := h.Repo.Create(c.Context(), videoID, uid, strings.TrimSpace(body.Content))
	if err != nil {
		return fail(c, h.Log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(fiber.StatusCreated, com, "comment added successfully"))
}

// Update godoc
// @Summary  Replace a comment's content (owner only)
// @Tags     comments
// @Param    commentId path string               true "comment id"
// @Param    body      body dto.UpdateCommentReq true "new content"
// @Success  200 {object} dto.APIResponse
// @Router   /comments/{commentId} [patch]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure(fiber.StatusUnauthorized, "unauthorized"))
	}

	commentID, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(fiber.StatusBadRequest, "invalid comment id"))
	}

	var body dto.UpdateCommentReq
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(fiber.StatusBadRequest, "content is required"))
	}

	com, err := h.Repo.GetByID(c.Context(), commentID)
	if err != nil {
		return fail(c, h.Log, err)
	}
	if com == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Failure(fiber.StatusNotFound, "comment not found"))
	}

	updated, err := h.Repo.UpdateContent(c.Context(), commentID, uid, strings.TrimSpace(body.Content))
	if err != nil {
		return fail(c, h.Log, err)
	}
	if updated == nil {
		return c.Status(fiber.StatusForbidden).JSON(dto.Failure(fiber.StatusForbidden, "forbidden"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.Success(fiber.StatusOK, updated, "comment updated successfully"))
}

// Delete godoc
// @Summary  Delete a comment (owner only)
// @Tags     comments
// @Param    commentId path string true "comment id"
// @Success  200 {object} dto.APIResponse
// @Router   /comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure(fiber.StatusUnauthorized, "unauthorized"))
	}

	commentID, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(fiber.StatusBadRequest, "invalid comment id"))
	}

	com, err := h.Repo.GetByID(c.Context(), commentID)
	if err != nil {
		return fail(c, h.Log, err)
	}
	if com == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Failure(fiber.StatusNotFound, "comment not found"))
	}

	deleted, err := h.Repo.Delete(c.Context(), commentID, uid)
	if err != nil {
		return fail(c, h.Log, err)
	}
	if !deleted {
		return c.Status(fiber.StatusForbidden).JSON(dto.Failure(fiber.StatusForbidden, "forbidden"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.Success(fiber.StatusOK, nil, "comment deleted successfully"))
}
