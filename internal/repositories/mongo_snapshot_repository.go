package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/reelshare/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const currentSnapshotID = "current"

// snapshotDocument is the stored form of a snapshot; there is a single document
// that every save replaces.
type snapshotDocument struct {
	ID              string `bson:"_id"`
	models.Snapshot `bson:",inline"`
}

// MongoSnapshotRepository implements SnapshotRepository for MongoDB
type MongoSnapshotRepository struct {
	collection *mongo.Collection
}

// NewMongoSnapshotRepository creates a new MongoSnapshotRepository
func NewMongoSnapshotRepository(db *mongo.Database) *MongoSnapshotRepository {
	return &MongoSnapshotRepository{collection: db.Collection("snapshots")}
}

// Save replaces the stored snapshot with snap
func (r *MongoSnapshotRepository) Save(ctx context.Context, snap *models.Snapshot) error {
	doc := snapshotDocument{ID: currentSnapshotID, Snapshot: *snap}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": currentSnapshotID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load retrieves the stored snapshot
func (r *MongoSnapshotRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	var doc snapshotDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": currentSnapshotID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return &doc.Snapshot, nil
}
