package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is the rating change of one player in one game.
type Participant struct {
	PlayerID      string
	TeamID        string
	Performance   float64
	ActualShare   float64
	ExpectedShare float64
	K             float64
	RatingBefore  float64
	RatingAfter   float64
}

func (p Participant) Delta() float64 {
	return p.RatingAfter - p.RatingBefore
}

// GameUpdate is the record of one rated game.
type GameUpdate struct {
	Seq          int
	Grade        string
	Round        string
	Date         time.Time
	HomeTeamID   string
	AwayTeamID   string
	WinnerTeamID string
	Participants []Participant
}

// RunReport counts what a rating run did and did not use.
type RunReport struct {
	GamesTotal               int
	GamesRated               int
	GamesForfeited           int
	GamesMissingParticipants int
	MalformedGames           int
	MalformedLines           int
	DuplicateLinesMerged     int
	LinesUnmatched           int
	PlayersRated             int
	TeamsRated               int
}

func (r RunReport) GamesSkipped() int {
	return r.GamesForfeited + r.GamesMissingParticipants
}

// Add sums the counters of other into r.
func (r *RunReport) Add(other RunReport) {
	r.GamesTotal += other.GamesTotal
	r.GamesRated += other.GamesRated
	r.GamesForfeited += other.GamesForfeited
	r.GamesMissingParticipants += other.GamesMissingParticipants
	r.MalformedGames += other.MalformedGames
	r.MalformedLines += other.MalformedLines
	r.DuplicateLinesMerged += other.DuplicateLinesMerged
	r.LinesUnmatched += other.LinesUnmatched
	r.PlayersRated += other.PlayersRated
	r.TeamsRated += other.TeamsRated
}

// Snapshot is the immutable result of one rating run.
type Snapshot struct {
	RunID     uuid.UUID
	CreatedAt time.Time
	Players   []PlayerRating
	Teams     []TeamRating
	Ladder    []LadderRating
	Report    RunReport
}

// RunInfo describes a stored snapshot without its tables.
type RunInfo struct {
	RunID     uuid.UUID
	CreatedAt time.Time
	Report    RunReport
}
