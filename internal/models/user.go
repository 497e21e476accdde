package models

import "time"

// UserProfile is the public profile of an identity. Counters are denormalised
// and maintained by the store on post, like and follow side effects.
type UserProfile struct {
	Identity       string    `json:"identity" bson:"identity"`
	Username       string    `json:"username" bson:"username"`
	Bio            string    `json:"bio" bson:"bio"`
	AvatarRef      string    `json:"avatar_ref,omitempty" bson:"avatar_ref,omitempty"`
	FollowersCount int       `json:"followers_count" bson:"followers_count"`
	FollowingCount int       `json:"following_count" bson:"following_count"`
	TotalLikes     int       `json:"total_likes" bson:"total_likes"`
	PostsCount     int       `json:"posts_count" bson:"posts_count"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// RegisterRequest defines the request body for creating the caller's profile
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,username"`
	Bio       string `json:"bio" validate:"max=300"`
	AvatarRef string `json:"avatar_ref,omitempty" validate:"omitempty,max=1024"`
}

// UpdateProfileRequest defines the request body for editing the caller's profile
type UpdateProfileRequest struct {
	Username  string `json:"username" validate:"required,username"`
	Bio       string `json:"bio" validate:"max=300"`
	AvatarRef string `json:"avatar_ref,omitempty" validate:"omitempty,max=1024"`
}

// SaveProfileRequest is the full profile record accepted by the upsert endpoint.
// Identity is accepted for compatibility but always replaced by the caller.
type SaveProfileRequest struct {
	Identity       string `json:"identity,omitempty"`
	Username       string `json:"username" validate:"required,username"`
	Bio            string `json:"bio" validate:"max=300"`
	AvatarRef      string `json:"avatar_ref,omitempty" validate:"omitempty,max=1024"`
	FollowersCount int    `json:"followers_count" validate:"min=0"`
	FollowingCount int    `json:"following_count" validate:"min=0"`
	TotalLikes     int    `json:"total_likes" validate:"min=0"`
	PostsCount     int    `json:"posts_count" validate:"min=0"`
}
