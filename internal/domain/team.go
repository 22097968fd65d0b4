package domain

import "sort"

// TeamRating is a team rating aggregated from its players.
type TeamRating struct {
	TeamID     string
	Name       string
	Rating     float64
	Players    int
	RatingRank int
}

// LadderRating is a team rating computed directly from game outcomes.
type LadderRating struct {
	TeamID      string
	Name        string
	Rating      float64
	Deviation   float64
	GamesPlayed int
	RatingRank  int
}

func SortTeams(teams []TeamRating) {
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Rating != teams[j].Rating {
			return teams[i].Rating > teams[j].Rating
		}
		return teams[i].TeamID < teams[j].TeamID
	})
	for i := range teams {
		teams[i].RatingRank = i + 1
	}
}

func SortLadder(teams []LadderRating) {
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Rating != teams[j].Rating {
			return teams[i].Rating > teams[j].Rating
		}
		return teams[i].TeamID < teams[j].TeamID
	})
	for i := range teams {
		teams[i].RatingRank = i + 1
	}
}
