package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CreateCommentReq struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type UpdateCommentReq struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// CommentView is a comment annotated with its author's public profile.
type CommentView struct {
	ID        bson.ObjectID `json:"id" bson:"_id"`
	Content   string        `json:"content" bson:"content"`
	VideoID   bson.ObjectID `json:"videoId" bson:"video_id"`
	Owner     UserProfile   `json:"owner" bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

type CommentListResp struct {
	Comments      []CommentView `json:"comments"`
	TotalComments int64         `json:"totalComments"`
	Page          int64         `json:"page"`
	Limit         int64         `json:"limit"`
}
