package models

// Hashtag tracks the posts tagged with Name. PostCount grows with every like
// on one of those posts rather than with the number of tagged posts.
type Hashtag struct {
	Name      string  `json:"name" bson:"name"`
	PostIDs   []int64 `json:"post_ids" bson:"post_ids"`
	PostCount int     `json:"post_count" bson:"post_count"`
}
