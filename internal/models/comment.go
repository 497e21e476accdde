package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID             int64     `json:"id" bson:"id"`
	PostID         int64     `json:"post_id" bson:"post_id"`
	AuthorIdentity string    `json:"author_identity" bson:"author_identity"`
	Text           string    `json:"text" bson:"text"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}
