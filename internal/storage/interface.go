package storage

import (
	"context"
	"errors"

	"github.com/goserg/courtrating/internal/domain"
)

var ErrNoSnapshot = errors.New("no snapshot stored")

// SnapshotStorage keeps the history of rating runs.
type SnapshotStorage interface {
	SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error
	LatestSnapshot(ctx context.Context) (domain.Snapshot, error)
	ListRuns(ctx context.Context) ([]domain.RunInfo, error)
}

// TableWriter emits the rating tables of one run.
type TableWriter interface {
	WriteTables(snapshot domain.Snapshot, updates []domain.GameUpdate) error
}
