package models

import "time"

// Snapshot is a serialisable copy of every table held by the store
type Snapshot struct {
	TakenAt       time.Time       `json:"taken_at" bson:"taken_at"`
	NextPostID    int64           `json:"next_post_id" bson:"next_post_id"`
	NextCommentID int64           `json:"next_comment_id" bson:"next_comment_id"`
	Profiles      []UserProfile   `json:"profiles" bson:"profiles"`
	Posts         []Post          `json:"posts" bson:"posts"`
	Comments      []Comment       `json:"comments" bson:"comments"`
	Likes         []LikeSet       `json:"likes" bson:"likes"`
	Following     []IdentitySet   `json:"following" bson:"following"`
	Followers     []IdentitySet   `json:"followers" bson:"followers"`
	TagPosts      []TagPosts      `json:"tag_posts" bson:"tag_posts"`
	Hashtags      []Hashtag       `json:"hashtags" bson:"hashtags"`
	Features      []SocialFeature `json:"features" bson:"features"`
}

// LikeSet lists the likers of a post in like order
type LikeSet struct {
	PostID int64    `json:"post_id" bson:"post_id"`
	Likers []string `json:"likers" bson:"likers"`
}

// IdentitySet is one side of the follow relation keyed by Identity
type IdentitySet struct {
	Identity string   `json:"identity" bson:"identity"`
	Members  []string `json:"members" bson:"members"`
}

// TagPosts is the tag -> post association seeded at post creation
type TagPosts struct {
	Tag     string  `json:"tag" bson:"tag"`
	PostIDs []int64 `json:"post_ids" bson:"post_ids"`
}
