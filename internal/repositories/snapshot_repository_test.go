package repositories

import (
	"testing"
	"time"

	"github.com/anonto42/reelshare/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		TakenAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		NextPostID:    3,
		NextCommentID: 2,
		Profiles:      []models.UserProfile{{Identity: "a", Username: "alice", PostsCount: 1}},
		Posts: []models.Post{{
			ID:             2,
			AuthorIdentity: "a",
			MediaType:      models.MediaVideo,
			Hashtags:       []string{"#go"},
			Effect:         &models.Effect{FeatureID: "glow", Intensity: 40},
			LikesCount:     1,
		}},
		Likes:    []models.LikeSet{{PostID: 2, Likers: []string{"b"}}},
		TagPosts: []models.TagPosts{{Tag: "#go", PostIDs: []int64{2}}},
		Hashtags: []models.Hashtag{{Name: "#go", PostCount: 1}},
	}
}

func TestSnapshotRecordRoundTrip(t *testing.T) {
	snap := sampleSnapshot()

	record, err := newSnapshotRecord(snap)
	require.NoError(t, err)
	assert.Equal(t, 1, record.Profiles)
	assert.Equal(t, 1, record.Posts)
	assert.Equal(t, snap.TakenAt, record.TakenAt)

	decoded, err := record.snapshot()
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)
}

func TestSnapshotRecordCorrupt(t *testing.T) {
	_, err := (&SnapshotRecord{ID: 9, Payload: []byte("{")}).snapshot()
	assert.ErrorContains(t, err, "snapshot 9")
}

func TestSnapshotDocumentBSON(t *testing.T) {
	snap := sampleSnapshot()

	raw, err := bson.Marshal(snapshotDocument{ID: currentSnapshotID, Snapshot: *snap})
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, currentSnapshotID, fields["_id"])
	assert.Contains(t, fields, "posts", "snapshot fields are inlined")

	var doc snapshotDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, snap.Posts, doc.Posts)
	assert.Equal(t, snap.Likes, doc.Likes)
	assert.True(t, snap.TakenAt.Equal(doc.TakenAt))
}
