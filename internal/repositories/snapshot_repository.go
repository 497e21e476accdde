package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/reelshare/backend/internal/models"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet
var ErrNoSnapshot = errors.New("no snapshot saved")

// SnapshotRepository persists whole-store snapshots
type SnapshotRepository interface {
	Save(ctx context.Context, snap *models.Snapshot) error
	Load(ctx context.Context) (*models.Snapshot, error)
}
