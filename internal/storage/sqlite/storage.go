package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/goserg/courtrating/gen/model"
	"github.com/goserg/courtrating/gen/table"
	"github.com/goserg/courtrating/internal/config"
	"github.com/goserg/courtrating/internal/domain"
	sqlite3 "github.com/goserg/courtrating/internal/migrate"
	"github.com/goserg/courtrating/internal/storage"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/sirupsen/logrus"
)

// insertChunk bounds the rows of one INSERT statement to stay under the
// SQLite host parameter limit.
const insertChunk = 500

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.SnapshotStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Storage) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "snapshot-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpRatingDB(db)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("migrate: %w", err), db.Close())
	}

	err = db.Ping()
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	log.WithField("file", cfg.SqliteFile).Info("snapshot storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=1"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error {
	err := inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		_, err := table.Runs.
			INSERT(table.Runs.AllColumns).
			MODEL(convertRunFromDomain(snapshot)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		players := convertPlayersFromDomain(snapshot.RunID, snapshot.Players)
		for _, chunk := range chunks(players, insertChunk) {
			_, err = table.PlayerRatings.
				INSERT(table.PlayerRatings.AllColumns).
				MODELS(chunk).
				ExecContext(ctx, tx)
			if err != nil {
				return fmt.Errorf("insert player ratings: %w", err)
			}
		}

		teams := convertTeamsFromDomain(snapshot.RunID, snapshot.Teams)
		for _, chunk := range chunks(teams, insertChunk) {
			_, err = table.TeamRatings.
				INSERT(table.TeamRatings.AllColumns).
				MODELS(chunk).
				ExecContext(ctx, tx)
			if err != nil {
				return fmt.Errorf("insert team ratings: %w", err)
			}
		}

		ladder := convertLadderFromDomain(snapshot.RunID, snapshot.Ladder)
		for _, chunk := range chunks(ladder, insertChunk) {
			_, err = table.TeamLadder.
				INSERT(table.TeamLadder.AllColumns).
				MODELS(chunk).
				ExecContext(ctx, tx)
			if err != nil {
				return fmt.Errorf("insert team ladder: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"run":     snapshot.RunID,
		"players": len(snapshot.Players),
		"teams":   len(snapshot.Teams),
	}).Info("snapshot saved")
	return nil
}

func (s *Storage) LatestSnapshot(ctx context.Context) (domain.Snapshot, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) (domain.Snapshot, error) {
		var run model.Runs
		err := table.Runs.
			SELECT(table.Runs.AllColumns).
			FROM(table.Runs).
			ORDER_BY(table.Runs.CreatedAt.DESC(), table.Runs.ID.DESC()).
			LIMIT(1).
			QueryContext(ctx, tx, &run)
		if err != nil {
			if errors.Is(err, qrm.ErrNoRows) {
				return domain.Snapshot{}, storage.ErrNoSnapshot
			}
			return domain.Snapshot{}, err
		}
		runID := sqlite.String(run.ID)

		var players []model.PlayerRatings
		err = table.PlayerRatings.
			SELECT(table.PlayerRatings.AllColumns).
			FROM(table.PlayerRatings).
			WHERE(table.PlayerRatings.RunID.EQ(runID)).
			ORDER_BY(table.PlayerRatings.RatingRank.ASC()).
			QueryContext(ctx, tx, &players)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("select player ratings: %w", err)
		}

		var teams []model.TeamRatings
		err = table.TeamRatings.
			SELECT(table.TeamRatings.AllColumns).
			FROM(table.TeamRatings).
			WHERE(table.TeamRatings.RunID.EQ(runID)).
			ORDER_BY(table.TeamRatings.RatingRank.ASC()).
			QueryContext(ctx, tx, &teams)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("select team ratings: %w", err)
		}

		var ladder []model.TeamLadder
		err = table.TeamLadder.
			SELECT(table.TeamLadder.AllColumns).
			FROM(table.TeamLadder).
			WHERE(table.TeamLadder.RunID.EQ(runID)).
			ORDER_BY(table.TeamLadder.RatingRank.ASC()).
			QueryContext(ctx, tx, &ladder)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("select team ladder: %w", err)
		}

		info, err := convertRunToDomain(run)
		if err != nil {
			return domain.Snapshot{}, err
		}
		return domain.Snapshot{
			RunID:     info.RunID,
			CreatedAt: info.CreatedAt,
			Report:    info.Report,
			Players:   convertPlayersToDomain(players),
			Teams:     convertTeamsToDomain(teams),
			Ladder:    convertLadderToDomain(ladder),
		}, nil
	})
}

func (s *Storage) ListRuns(ctx context.Context) ([]domain.RunInfo, error) {
	var runs []model.Runs
	err := table.Runs.
		SELECT(table.Runs.AllColumns).
		FROM(table.Runs).
		ORDER_BY(table.Runs.CreatedAt.DESC(), table.Runs.ID.DESC()).
		QueryContext(ctx, s.db, &runs)
	if err != nil {
		return nil, err
	}
	infos := make([]domain.RunInfo, 0, len(runs))
	for _, run := range runs {
		info, err := convertRunToDomain(run)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func chunks[T any](rows []T, size int) [][]T {
	var out [][]T
	for len(rows) > size {
		out = append(out, rows[:size])
		rows = rows[size:]
	}
	if len(rows) > 0 {
		out = append(out, rows)
	}
	return out
}

func inTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	value, err := fn(tx)
	if err != nil {
		return zero, errors.Join(err, tx.Rollback())
	}
	return value, tx.Commit()
}

func inTxSimple(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	_, err := inTx(ctx, db, func(tx *sql.Tx) (struct{}, error) { return struct{}{}, fn(tx) })
	return err
}

func parseRunID(id string) (uuid.UUID, error) {
	runID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("run id %q: %w", id, err)
	}
	return runID, nil
}
