package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anonto42/reelshare/backend/internal/models"
	"gorm.io/gorm"
)

// snapshotsKept is how many snapshot rows survive a save
const snapshotsKept = 5

// SnapshotRecord is a snapshot row; the payload is the JSON encoded snapshot
type SnapshotRecord struct {
	ID        uint      `gorm:"primaryKey"`
	TakenAt   time.Time `gorm:"index"`
	Profiles  int
	Posts     int
	Payload   []byte `gorm:"type:bytea;not null"`
	CreatedAt time.Time
}

// PostgresSnapshotRepository implements SnapshotRepository for PostgreSQL
type PostgresSnapshotRepository struct {
	db *gorm.DB
}

// NewPostgresSnapshotRepository creates a new PostgresSnapshotRepository
func NewPostgresSnapshotRepository(db *gorm.DB) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{db: db}
}

// Migrate creates the snapshot table
func (r *PostgresSnapshotRepository) Migrate() error {
	return r.db.AutoMigrate(&SnapshotRecord{})
}

// Save appends snap and prunes all but the most recent rows
func (r *PostgresSnapshotRepository) Save(ctx context.Context, snap *models.Snapshot) error {
	record, err := newSnapshotRecord(snap)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		keep := tx.Model(&SnapshotRecord{}).Select("id").Order("id desc").Limit(snapshotsKept)
		if err := tx.Where("id NOT IN (?)", keep).Delete(&SnapshotRecord{}).Error; err != nil {
			return fmt.Errorf("failed to prune snapshots: %w", err)
		}
		return nil
	})
}

// Load retrieves the most recent snapshot
func (r *PostgresSnapshotRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	var record SnapshotRecord
	if err := r.db.WithContext(ctx).Order("id desc").First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return record.snapshot()
}

func newSnapshotRecord(snap *models.Snapshot) (*SnapshotRecord, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return &SnapshotRecord{
		TakenAt:  snap.TakenAt,
		Profiles: len(snap.Profiles),
		Posts:    len(snap.Posts),
		Payload:  payload,
	}, nil
}

func (rec *SnapshotRecord) snapshot() (*models.Snapshot, error) {
	var snap models.Snapshot
	if err := json.Unmarshal(rec.Payload, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %d: %w", rec.ID, err)
	}
	return &snap, nil
}
