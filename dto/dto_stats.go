package dto

// ChannelStats is the dashboard aggregate for one channel. Every count is
// derived from current documents at query time, never from stored counters.
type ChannelStats struct {
	TotalVideos   int64 `json:"totalVideos"`
	TotalViews    int64 `json:"totalViews"`
	Subscribers   int64 `json:"subscribers"`
	SubscribedTo  int64 `json:"subscribedTo"`
	TotalLikes    int64 `json:"totalLikes"`
	TotalComments int64 `json:"totalComments"`
	TotalTweets   int64 `json:"totalTweets"`
}