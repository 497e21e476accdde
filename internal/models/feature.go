package models

// Default and bounds for effect and feature intensity
const (
	DefaultIntensity = 50
	MinIntensity     = 0
	MaxIntensity     = 100
)

// ClampIntensity replaces an out-of-range intensity with the default
func ClampIntensity(v int) int {
	if v < MinIntensity || v > MaxIntensity {
		return DefaultIntensity
	}
	return v
}

// SocialFeature is an entry of the feature catalog (filters, effects, sounds).
type SocialFeature struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Category    string   `json:"category" bson:"category"`
	Description string   `json:"description" bson:"description"`
	Intensity   int      `json:"intensity" bson:"intensity"`
	RelatedIDs  []string `json:"related_ids,omitempty" bson:"related_ids,omitempty"`
	UsageCount  int      `json:"usage_count" bson:"usage_count"`
}

// UpsertFeatureRequest defines the request body for creating or replacing a catalog feature
type UpsertFeatureRequest struct {
	ID          string   `json:"id" validate:"required,max=64"`
	Name        string   `json:"name" validate:"required,max=100"`
	Category    string   `json:"category" validate:"required,max=50"`
	Description string   `json:"description" validate:"max=500"`
	Intensity   int      `json:"intensity"`
	RelatedIDs  []string `json:"related_ids,omitempty" validate:"omitempty,dive,max=64"`
}

// TrendingPost is a row of the trending table computed by the aggregator
type TrendingPost struct {
	PostID int64 `json:"post_id" bson:"post_id"`
	Score  int   `json:"score" bson:"score"`
}
