package domain

import (
	"sort"
	"time"
)

// PlayerGameLine is one box-score row of a player in a single game.
type PlayerGameLine struct {
	Grade      string
	Round      string
	GameDate   time.Time
	TeamID     string
	PlayerID   string
	PlayerName string
	Jersey     string
	Points     int
	Made1      int
	Made2      int
	Made3      int
	Fouls      int

	Row int
}

// Add sums the numeric fields of other into l.
// Identity fields of l are kept.
func (l *PlayerGameLine) Add(other PlayerGameLine) {
	l.Points += other.Points
	l.Made1 += other.Made1
	l.Made2 += other.Made2
	l.Made3 += other.Made3
	l.Fouls += other.Fouls
	if l.PlayerName == "" {
		l.PlayerName = other.PlayerName
	}
	if l.Jersey == "" {
		l.Jersey = other.Jersey
	}
}

type PlayerRating struct {
	PlayerID    string
	Name        string
	TeamID      string
	TeamName    string
	Grade       string
	Rating      float64
	GamesPlayed int
	RatingRank  int
}

// SortPlayers orders players by rating, highest first, and assigns ranks.
// Ties are broken by id so the order is stable across runs.
func SortPlayers(players []PlayerRating) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Rating != players[j].Rating {
			return players[i].Rating > players[j].Rating
		}
		return players[i].PlayerID < players[j].PlayerID
	})
	for i := range players {
		players[i].RatingRank = i + 1
	}
}
