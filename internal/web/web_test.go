package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/goserg/courtrating/internal/cache/mem"
	"github.com/goserg/courtrating/internal/config"
	"github.com/goserg/courtrating/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuns struct {
	runs []domain.RunInfo
	err  error
}

func (f fakeRuns) ListRuns(context.Context) ([]domain.RunInfo, error) {
	return f.runs, f.err
}

func newTestServer(t *testing.T, loaded bool, runs RunLister) *Server {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	cache := mem.New()
	if loaded {
		cache.Update(domain.Snapshot{
			RunID: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
			Players: []domain.PlayerRating{
				{PlayerID: "p1", Name: "Ann Lee", TeamID: "hawks", TeamName: "Hawks", Grade: "A Grade", Rating: 1520.1234567, GamesPlayed: 3, RatingRank: 1},
				{PlayerID: "p2", Name: "Bo Chan", TeamID: "owls", TeamName: "Owls", Grade: "A Grade", Rating: 1500, GamesPlayed: 3, RatingRank: 2},
				{PlayerID: "p3", Name: "Ann Lee", TeamID: "kites", TeamName: "Kites", Grade: "B Grade", Rating: 1480, GamesPlayed: 1, RatingRank: 3},
			},
			Teams: []domain.TeamRating{
				{TeamID: "hawks", Name: "Hawks", Rating: 1520, Players: 1, RatingRank: 1},
			},
			Ladder: []domain.LadderRating{
				{TeamID: "hawks", Name: "Hawks", Rating: 1510, GamesPlayed: 3, RatingRank: 1},
			},
			Report: domain.RunReport{GamesTotal: 5, GamesRated: 3, GamesForfeited: 1, GamesMissingParticipants: 1},
		})
	}
	return New(cache, runs, config.Server{}, l)
}

func get(t *testing.T, s *Server, target string, dest any) int {
	t.Helper()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	if dest != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
	}
	return resp.StatusCode
}

type playersBody struct {
	Total   int              `json:"total"`
	Players []playerResponse `json:"players"`
}

func TestPlayers(t *testing.T) {
	s := newTestServer(t, true, nil)

	var body playersBody
	require.Equal(t, http.StatusOK, get(t, s, "/api/players", &body))
	assert.Equal(t, 3, body.Total)
	require.Len(t, body.Players, 3)
	assert.Equal(t, "p1", body.Players[0].PlayerID)
	assert.Equal(t, 1520.123457, body.Players[0].Rating)

	body = playersBody{}
	require.Equal(t, http.StatusOK, get(t, s, "/api/players?limit=1&offset=1", &body))
	assert.Equal(t, 3, body.Total)
	require.Len(t, body.Players, 1)
	assert.Equal(t, "p2", body.Players[0].PlayerID)

	body = playersBody{}
	require.Equal(t, http.StatusOK, get(t, s, "/api/players?grade=b%20grade", &body))
	require.Len(t, body.Players, 1)
	assert.Equal(t, "p3", body.Players[0].PlayerID)

	body = playersBody{}
	require.Equal(t, http.StatusOK, get(t, s, "/api/players?name=ANN%20LEE", &body))
	assert.Equal(t, 2, body.Total)

	body = playersBody{}
	require.Equal(t, http.StatusOK, get(t, s, "/api/players?name=ann%20lee&team=kites", &body))
	require.Len(t, body.Players, 1)
	assert.Equal(t, "p3", body.Players[0].PlayerID)
}

func TestPlayersBadQuery(t *testing.T) {
	s := newTestServer(t, true, nil)
	var body errorData
	require.Equal(t, http.StatusBadRequest, get(t, s, "/api/players?limit=abc&offset=-1", &body))
	assert.Len(t, body.Errors, 1)

	body = errorData{}
	require.Equal(t, http.StatusBadRequest, get(t, s, "/api/players?limit=5000&offset=-1", &body))
	assert.Len(t, body.Errors, 2)
}

func TestPlayer(t *testing.T) {
	s := newTestServer(t, true, nil)
	var player playerResponse
	require.Equal(t, http.StatusOK, get(t, s, "/api/players/p2", &player))
	assert.Equal(t, "Bo Chan", player.Name)
	assert.Equal(t, "Owls", player.Team)

	var body errorData
	require.Equal(t, http.StatusNotFound, get(t, s, "/api/players/nobody", &body))
	assert.Equal(t, []string{"player not found"}, body.Errors)
}

func TestTeamsLadderReport(t *testing.T) {
	s := newTestServer(t, true, nil)

	var teams struct {
		Total int            `json:"total"`
		Teams []teamResponse `json:"teams"`
	}
	require.Equal(t, http.StatusOK, get(t, s, "/api/teams", &teams))
	assert.Equal(t, 1, teams.Total)
	assert.Equal(t, "hawks", teams.Teams[0].TeamID)

	var ladder struct {
		Ladder []ladderResponse `json:"ladder"`
	}
	require.Equal(t, http.StatusOK, get(t, s, "/api/ladder", &ladder))
	require.Len(t, ladder.Ladder, 1)
	assert.Equal(t, 1510.0, ladder.Ladder[0].Rating)

	var report reportResponse
	require.Equal(t, http.StatusOK, get(t, s, "/api/report", &report))
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", report.RunID)
	assert.Equal(t, 2, report.GamesSkipped)
	assert.Equal(t, 3, report.GamesRated)
}

func TestRuns(t *testing.T) {
	s := newTestServer(t, true, nil)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/api/runs", nil))

	runs := fakeRuns{runs: []domain.RunInfo{{RunID: uuid.New()}, {RunID: uuid.New()}}}
	s = newTestServer(t, true, runs)
	var body struct {
		Total int              `json:"total"`
		Runs  []reportResponse `json:"runs"`
	}
	require.Equal(t, http.StatusOK, get(t, s, "/api/runs", &body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, runs.runs[0].RunID.String(), body.Runs[0].RunID)

	s = newTestServer(t, true, fakeRuns{err: errors.New("disk on fire")})
	assert.Equal(t, http.StatusInternalServerError, get(t, s, "/api/runs", nil))
}

func TestNotLoaded(t *testing.T) {
	s := newTestServer(t, false, nil)
	var body errorData
	require.Equal(t, http.StatusServiceUnavailable, get(t, s, "/api/players", &body))
	assert.NotEmpty(t, body.Errors)

	var paths map[string]string
	require.Equal(t, http.StatusOK, get(t, s, "/", &paths))
	assert.Equal(t, "/api/players", paths["Players"])
}
