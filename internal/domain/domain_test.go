package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGameRecord_Winner(t *testing.T) {
	tests := []struct {
		name string
		game GameRecord
		want string
	}{
		{
			name: "home wins",
			game: GameRecord{HomeTeamID: "a", AwayTeamID: "b", HomeScore: Score(50), AwayScore: Score(40)},
			want: "a",
		},
		{
			name: "away wins",
			game: GameRecord{HomeTeamID: "a", AwayTeamID: "b", HomeScore: Score(39), AwayScore: Score(40)},
			want: "b",
		},
		{
			name: "draw",
			game: GameRecord{HomeTeamID: "a", AwayTeamID: "b", HomeScore: Score(40), AwayScore: Score(40)},
			want: "",
		},
		{
			name: "forfeit",
			game: GameRecord{HomeTeamID: "a", AwayTeamID: "b", Forfeited: true},
			want: "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.game.Winner(); got != tt.want {
				t.Errorf("Winner() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDay(t *testing.T) {
	moment := time.Date(2024, 5, 4, 23, 30, 0, 0, time.FixedZone("AEST", 10*3600))
	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), Day(moment))
	assert.Equal(t, "2024-05-04", DateKey(Day(moment)))
}

func TestPlayerGameLine_Add(t *testing.T) {
	l := PlayerGameLine{PlayerID: "p1", Points: 10, Made2: 5, Fouls: 1}
	l.Add(PlayerGameLine{PlayerID: "p1", PlayerName: "Ann", Points: 4, Made1: 2, Made2: 1, Fouls: 2})
	assert.Equal(t, PlayerGameLine{PlayerID: "p1", PlayerName: "Ann", Points: 14, Made1: 2, Made2: 6, Fouls: 3}, l)
}

func TestSortPlayers(t *testing.T) {
	players := []PlayerRating{
		{PlayerID: "c", Rating: 1490},
		{PlayerID: "b", Rating: 1510},
		{PlayerID: "a", Rating: 1510},
	}
	SortPlayers(players)
	assert.Equal(t, "a", players[0].PlayerID)
	assert.Equal(t, "b", players[1].PlayerID)
	assert.Equal(t, "c", players[2].PlayerID)
	for i, p := range players {
		assert.Equal(t, i+1, p.RatingRank)
	}
}

func TestRunReport(t *testing.T) {
	r := RunReport{GamesTotal: 3, GamesForfeited: 1, GamesMissingParticipants: 1}
	r.Add(RunReport{GamesTotal: 2, GamesRated: 2, LinesUnmatched: 4})
	assert.Equal(t, 5, r.GamesTotal)
	assert.Equal(t, 2, r.GamesRated)
	assert.Equal(t, 2, r.GamesSkipped())
	assert.Equal(t, 4, r.LinesUnmatched)
}
