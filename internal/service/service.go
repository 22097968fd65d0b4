package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/courtrating/internal/aggregate"
	"github.com/goserg/courtrating/internal/config"
	"github.com/goserg/courtrating/internal/domain"
	"github.com/goserg/courtrating/internal/engine"
	"github.com/goserg/courtrating/internal/loader"
	"github.com/goserg/courtrating/internal/performance"
	"github.com/goserg/courtrating/internal/storage"
	"github.com/sirupsen/logrus"
)

// Publisher announces a finished run to external consumers.
type Publisher interface {
	Publish(ctx context.Context, snapshot domain.Snapshot, updates []domain.GameUpdate) error
}

// SnapshotCache receives every new snapshot for readers.
type SnapshotCache interface {
	Update(snapshot domain.Snapshot)
}

// Sinks are the destinations of a run. Nil sinks are skipped.
type Sinks struct {
	Tables    storage.TableWriter
	Snapshots storage.SnapshotStorage
	Publisher Publisher
	Cache     SnapshotCache
}

type RatingService struct {
	cfg    config.Config
	perf   performance.Model
	loader *loader.Loader
	sinks  Sinks
	l      *logrus.Logger
	log    *logrus.Entry
	now    func() time.Time
}

func New(cfg config.Config, sinks Sinks, l *logrus.Logger) (*RatingService, error) {
	perf, err := performance.New(cfg.Performance)
	if err != nil {
		return nil, err
	}
	return &RatingService{
		cfg:    cfg,
		perf:   perf,
		loader: loader.New(l),
		sinks:  sinks,
		l:      l,
		log:    l.WithField("from", "rating-service"),
		now:    time.Now,
	}, nil
}

// Rate computes the snapshot of one run over already loaded input.
func (s *RatingService) Rate(in loader.Input) (domain.Snapshot, []domain.GameUpdate) {
	eng := engine.New(s.cfg.Rating, s.perf, in.Grades, s.l)
	var result engine.Result
	if s.cfg.Rating.ParallelGrades {
		result = eng.RunByGrade(in.Games, in.Lines)
	} else {
		result = eng.Run(in.Games, in.Lines)
	}

	teams := aggregate.TeamRatings(result.Store, s.cfg.Aggregate.TopK)
	ladder := engine.ReplayLadder(engine.NewLadder(s.cfg.TeamLadder), in.Games)

	report := result.Report
	report.MalformedGames = in.MalformedGames
	report.MalformedLines = in.MalformedLines
	report.TeamsRated = len(teams)

	return domain.Snapshot{
		RunID:     uuid.New(),
		CreatedAt: s.now().UTC(),
		Players:   result.Store.Players(),
		Teams:     teams,
		Ladder:    ladder,
		Report:    report,
	}, result.Updates
}

// Run loads the configured input, rates it and hands the result to every
// sink. Publishing happens only after the tables are written and stored.
func (s *RatingService) Run(ctx context.Context) (domain.Snapshot, error) {
	in, err := s.loader.LoadFiles(s.cfg.Input.GamesFile, s.cfg.Input.LinesFile)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load input: %w", err)
	}
	snapshot, updates := s.Rate(in)
	s.logReport(snapshot)

	if s.sinks.Tables != nil {
		if err := s.sinks.Tables.WriteTables(snapshot, updates); err != nil {
			return domain.Snapshot{}, fmt.Errorf("write tables: %w", err)
		}
	}
	if s.sinks.Snapshots != nil {
		if err := s.sinks.Snapshots.SaveSnapshot(ctx, snapshot); err != nil {
			return domain.Snapshot{}, fmt.Errorf("save snapshot: %w", err)
		}
	}
	if s.sinks.Cache != nil {
		s.sinks.Cache.Update(snapshot)
	}
	if s.sinks.Publisher != nil {
		if err := s.sinks.Publisher.Publish(ctx, snapshot, updates); err != nil {
			return snapshot, fmt.Errorf("publish: %w", err)
		}
	}
	return snapshot, nil
}

func (s *RatingService) logReport(snapshot domain.Snapshot) {
	r := snapshot.Report
	s.log.WithFields(logrus.Fields{
		"run":                        snapshot.RunID,
		"formula":                    s.perf.Formula(),
		"games_total":                r.GamesTotal,
		"games_rated":                r.GamesRated,
		"games_forfeited":            r.GamesForfeited,
		"games_missing_participants": r.GamesMissingParticipants,
		"malformed_games":            r.MalformedGames,
		"malformed_lines":            r.MalformedLines,
		"duplicate_lines_merged":     r.DuplicateLinesMerged,
		"lines_unmatched":            r.LinesUnmatched,
		"players":                    r.PlayersRated,
		"teams":                      r.TeamsRated,
	}).Info("rating run finished")
}
