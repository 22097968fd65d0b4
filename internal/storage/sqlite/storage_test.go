package sqlite

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/goserg/courtrating/internal/config"
	"github.com/goserg/courtrating/internal/domain"
	"github.com/goserg/courtrating/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) *Storage {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	s, err := New(l, config.Storage{SqliteFile: filepath.Join(t.TempDir(), "rating.sqlite")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func snapshot(createdAt time.Time, players int) domain.Snapshot {
	s := domain.Snapshot{
		RunID:     uuid.New(),
		CreatedAt: createdAt,
		Teams: []domain.TeamRating{
			{TeamID: "hawks", Name: "Hawks", Rating: 1512.25, Players: 5},
			{TeamID: "owls", Name: "Owls", Rating: 1490.5, Players: 4},
		},
		Ladder: []domain.LadderRating{
			{TeamID: "hawks", Name: "Hawks", Rating: 1510, Deviation: 290.3, GamesPlayed: 3},
		},
		Report: domain.RunReport{
			GamesTotal:               10,
			GamesRated:               7,
			GamesForfeited:           2,
			GamesMissingParticipants: 1,
			PlayersRated:             players,
			TeamsRated:               2,
		},
	}
	for i := 0; i < players; i++ {
		s.Players = append(s.Players, domain.PlayerRating{
			PlayerID:    fmt.Sprintf("p%04d", i),
			Name:        fmt.Sprintf("Player %d", i),
			TeamID:      "hawks",
			TeamName:    "Hawks",
			Grade:       "A Grade",
			Rating:      1500 + float64(i)/3,
			GamesPlayed: i % 7,
		})
	}
	domain.SortPlayers(s.Players)
	domain.SortTeams(s.Teams)
	domain.SortLadder(s.Ladder)
	return s
}

func TestLatestSnapshotEmpty(t *testing.T) {
	s := newStorage(t)
	_, err := s.LatestSnapshot(context.Background())
	require.ErrorIs(t, err, storage.ErrNoSnapshot)

	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	older := snapshot(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), 3)
	newer := snapshot(time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC), 1200)
	require.NoError(t, s.SaveSnapshot(ctx, older))
	require.NoError(t, s.SaveSnapshot(ctx, newer))

	got, err := s.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.RunID, got.RunID)
	assert.True(t, newer.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, newer.Report, got.Report)
	assert.Equal(t, newer.Players, got.Players)
	assert.Equal(t, newer.Teams, got.Teams)
	assert.Equal(t, newer.Ladder, got.Ladder)

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.RunID, runs[0].RunID)
	assert.Equal(t, older.RunID, runs[1].RunID)
	assert.Equal(t, 3, runs[1].Report.PlayersRated)
}

func TestSaveSnapshotTwiceFails(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)
	snap := snapshot(time.Now(), 2)
	require.NoError(t, s.SaveSnapshot(ctx, snap))
	require.Error(t, s.SaveSnapshot(ctx, snap))

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestChunks(t *testing.T) {
	rows := make([]int, 1001)
	got := chunks(rows, 500)
	require.Len(t, got, 3)
	assert.Len(t, got[0], 500)
	assert.Len(t, got[2], 1)
	assert.Empty(t, chunks([]int{}, 500))
}
