package models

// FollowStatus is returned by follow, unfollow and follow-status lookups
type FollowStatus struct {
	Target    string `json:"target"`
	Following bool   `json:"following"`
}
