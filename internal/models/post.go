package models

import "time"

// MediaType is the kind of media a post references
type MediaType string

const (
	MediaVideo MediaType = "video"
	MediaPhoto MediaType = "photo"
)

// Valid reports whether t is one of the supported media types
func (t MediaType) Valid() bool {
	return t == MediaVideo || t == MediaPhoto
}

// Effect is an optional social feature applied to a post
type Effect struct {
	FeatureID string `json:"feature_id" bson:"feature_id"`
	Intensity int    `json:"intensity" bson:"intensity"`
}

// Post represents a media post. MediaRef is an opaque blob-store handle.
type Post struct {
	ID             int64     `json:"id" bson:"id"`
	AuthorIdentity string    `json:"author_identity" bson:"author_identity"`
	MediaRef       string    `json:"media_ref" bson:"media_ref"`
	MediaType      MediaType `json:"media_type" bson:"media_type"`
	Caption        string    `json:"caption" bson:"caption"`
	Hashtags       []string  `json:"hashtags" bson:"hashtags"`
	Effect         *Effect   `json:"effect,omitempty" bson:"effect,omitempty"`
	LikesCount     int       `json:"likes_count" bson:"likes_count"`
	CommentsCount  int       `json:"comments_count" bson:"comments_count"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// NewPost carries the caller-supplied fields of a post
type NewPost struct {
	MediaRef  string
	MediaType MediaType
	Caption   string
	Hashtags  string
	Effect    *Effect
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	MediaRef        string `json:"media_ref" validate:"required,max=1024"`
	MediaType       string `json:"media_type" validate:"required,oneof=video photo"`
	Caption         string `json:"caption" validate:"max=2200"`
	Hashtags        string `json:"hashtags" validate:"max=1000"`
	EffectFeatureID string `json:"effect_feature_id,omitempty" validate:"omitempty,max=64"`
	EffectIntensity *int   `json:"effect_intensity,omitempty"`
}
