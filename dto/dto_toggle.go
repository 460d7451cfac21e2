package dto

// LikeToggleResp is the body returned by the like toggle endpoints.
type LikeToggleResp struct {
	TargetID   string `json:"targetId"`
	TargetType string `json:"targetType"`
	IsLiked    bool   `json:"isLiked"`
	TotalLikes int64  `json:"totalLikes"`
}

// SubscriptionToggleResp is the body returned by the subscribe toggle.
type SubscriptionToggleResp struct {
	ChannelID        string `json:"channelId"`
	IsSubscribed     bool   `json:"isSubscribed"`
	TotalSubscribers int64  `json:"totalSubscribers"`
}
