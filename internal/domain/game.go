package domain

import (
	"fmt"
	"time"
)

const DateLayout = time.DateOnly

type GameRecord struct {
	Grade        string
	Round        string
	Date         time.Time
	HomeTeamID   string
	HomeTeamName string
	AwayTeamID   string
	AwayTeamName string
	// HomeScore and AwayScore are nil iff the game was forfeited.
	HomeScore    *int
	AwayScore    *int
	Forfeited    bool
	BoxScoreLink string

	Row int
}

// Winner returns the id of the winning team, or an empty string for draws
// and forfeits.
func (g GameRecord) Winner() string {
	if g.Forfeited || g.HomeScore == nil || g.AwayScore == nil {
		return ""
	}
	switch {
	case *g.HomeScore > *g.AwayScore:
		return g.HomeTeamID
	case *g.AwayScore > *g.HomeScore:
		return g.AwayTeamID
	default:
		return ""
	}
}

func (g GameRecord) String() string {
	return fmt.Sprintf("%s %s %s %s vs %s", g.Grade, g.Round, DateKey(g.Date), g.HomeTeamID, g.AwayTeamID)
}

// DateKey is the calendar date of t used to pair games with player lines.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Day drops the clock part of t.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Score(v int) *int {
	return &v
}
