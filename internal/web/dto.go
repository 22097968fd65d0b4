package web

import (
	"errors"
	"math"
	"time"

	"github.com/goserg/courtrating/internal/domain"
)

const maxLimit = 1000

var (
	ErrNegativeOffset = errors.New("offset must not be negative")
	ErrBadLimit       = errors.New("limit must be between 0 and 1000")
)

// listQuery is the paging and filtering of a rating table request.
type listQuery struct {
	Limit  int
	Offset int
	Grade  string
	Team   string
	Name   string
}

func (q listQuery) Validate() error {
	var err error
	if q.Offset < 0 {
		err = errors.Join(err, ErrNegativeOffset)
	}
	if q.Limit < 0 || q.Limit > maxLimit {
		err = errors.Join(err, ErrBadLimit)
	}
	return err
}

// window returns the bounds of the requested page in a table of n rows.
func (q listQuery) window(n int) (int, int) {
	start := q.Offset
	if start > n {
		start = n
	}
	end := n
	if q.Limit > 0 && start+q.Limit < n {
		end = start + q.Limit
	}
	return start, end
}

type playerResponse struct {
	Rank        int     `json:"rank"`
	PlayerID    string  `json:"player_id"`
	Name        string  `json:"name"`
	TeamID      string  `json:"team_id"`
	Team        string  `json:"team"`
	Grade       string  `json:"grade"`
	Rating      float64 `json:"rating"`
	GamesPlayed int     `json:"games_played"`
}

type teamResponse struct {
	Rank    int     `json:"rank"`
	TeamID  string  `json:"team_id"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Players int     `json:"players"`
}

type ladderResponse struct {
	Rank        int     `json:"rank"`
	TeamID      string  `json:"team_id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	Deviation   float64 `json:"deviation,omitempty"`
	GamesPlayed int     `json:"games_played"`
}

type reportResponse struct {
	RunID                    string    `json:"run_id"`
	CreatedAt                time.Time `json:"created_at"`
	GamesTotal               int       `json:"games_total"`
	GamesRated               int       `json:"games_rated"`
	GamesSkipped             int       `json:"games_skipped"`
	GamesForfeited           int       `json:"games_forfeited"`
	GamesMissingParticipants int       `json:"games_missing_participants"`
	MalformedGames           int       `json:"malformed_games"`
	MalformedLines           int       `json:"malformed_lines"`
	DuplicateLinesMerged     int       `json:"duplicate_lines_merged"`
	LinesUnmatched           int       `json:"lines_unmatched"`
	PlayersRated             int       `json:"players_rated"`
	TeamsRated               int       `json:"teams_rated"`
}

// round6 keeps the JSON tables at the precision of the CSV tables.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func convertPlayer(p domain.PlayerRating) playerResponse {
	return playerResponse{
		Rank:        p.RatingRank,
		PlayerID:    p.PlayerID,
		Name:        p.Name,
		TeamID:      p.TeamID,
		Team:        p.TeamName,
		Grade:       p.Grade,
		Rating:      round6(p.Rating),
		GamesPlayed: p.GamesPlayed,
	}
}

func convertPlayers(players []domain.PlayerRating) []playerResponse {
	converted := make([]playerResponse, 0, len(players))
	for _, p := range players {
		converted = append(converted, convertPlayer(p))
	}
	return converted
}

func convertTeams(teams []domain.TeamRating) []teamResponse {
	converted := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		converted = append(converted, teamResponse{
			Rank:    t.RatingRank,
			TeamID:  t.TeamID,
			Name:    t.Name,
			Rating:  round6(t.Rating),
			Players: t.Players,
		})
	}
	return converted
}

func convertLadder(ladder []domain.LadderRating) []ladderResponse {
	converted := make([]ladderResponse, 0, len(ladder))
	for _, t := range ladder {
		converted = append(converted, ladderResponse{
			Rank:        t.RatingRank,
			TeamID:      t.TeamID,
			Name:        t.Name,
			Rating:      round6(t.Rating),
			Deviation:   round6(t.Deviation),
			GamesPlayed: t.GamesPlayed,
		})
	}
	return converted
}

func convertRun(run domain.RunInfo) reportResponse {
	r := run.Report
	return reportResponse{
		RunID:                    run.RunID.String(),
		CreatedAt:                run.CreatedAt,
		GamesTotal:               r.GamesTotal,
		GamesRated:               r.GamesRated,
		GamesSkipped:             r.GamesSkipped(),
		GamesForfeited:           r.GamesForfeited,
		GamesMissingParticipants: r.GamesMissingParticipants,
		MalformedGames:           r.MalformedGames,
		MalformedLines:           r.MalformedLines,
		DuplicateLinesMerged:     r.DuplicateLinesMerged,
		LinesUnmatched:           r.LinesUnmatched,
		PlayersRated:             r.PlayersRated,
		TeamsRated:               r.TeamsRated,
	}
}
