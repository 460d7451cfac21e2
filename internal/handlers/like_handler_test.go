package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"vidtube/dto"
)

func TestLikeToggle_RequiresActor(t *testing.T) {
	h := &LikeHandler{}
	app := fiber.New()
	app.Post("/videos/:videoId/like", h.ToggleVideo)

	resp, err := app.Test(httptest.NewRequest("POST", "/videos/"+bson.NewObjectID().Hex()+"/like", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var env dto.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, fiber.StatusUnauthorized, env.StatusCode)
	assert.Equal(t, "unauthorized", env.Message)
}

func TestLikeToggle_InvalidResourceID(t *testing.T) {
	h := &LikeHandler{}
	app := fiber.New()
	app.Post("/tweets/:tweetId/like", asActor(bson.NewObjectID().Hex()), h.ToggleTweet)

	resp, err := app.Test(httptest.NewRequest("POST", "/tweets/short/like", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var env dto.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "invalid tweet id", env.Message)
}

func TestSubscriptionToggle_InvalidChannelID(t *testing.T) {
	h := &SubscriptionHandler{}
	app := fiber.New()
	app.Post("/channels/:channelId/subscribe", asActor(bson.NewObjectID().Hex()), h.Toggle)

	resp, err := app.Test(httptest.NewRequest("POST", "/channels/xyz/subscribe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubscribersList_RequiresActor(t *testing.T) {
	h := &SubscriptionHandler{}
	app := fiber.New()
	app.Get("/channels/:channelId/subscribers", h.Subscribers)

	resp, err := app.Test(httptest.NewRequest("GET", "/channels/"+bson.NewObjectID().Hex()+"/subscribers", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDashboardStats_RequiresActor(t *testing.T) {
	h := &DashboardHandler{}
	app := fiber.New()
	app.Get("/dashboard/stats", h.GetStats)

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
