package models

// LikeStatus is returned by like, unlike and like-status lookups
type LikeStatus struct {
	PostID     int64 `json:"post_id"`
	Liked      bool  `json:"liked"`
	LikesCount int   `json:"likes_count"`
}
