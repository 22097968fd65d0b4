package aggregate

import (
	"sort"

	"github.com/goserg/courtrating/internal/domain"
)

// Roster is what team aggregation needs from a rating store.
type Roster interface {
	Teams() []string
	TeamName(teamID string) string
	Roster(teamID string) []string
	Rating(playerID string) (float64, bool)
	BaseRating() float64
}

// TeamRatings rates every team as the mean of its best topK players.
// topK == 0 averages the whole roster. A team without rated players gets
// the base rating of the store.
func TeamRatings(r Roster, topK int) []domain.TeamRating {
	base := r.BaseRating()
	teams := r.Teams()
	out := make([]domain.TeamRating, 0, len(teams))
	for _, teamID := range teams {
		var ratings []float64
		for _, playerID := range r.Roster(teamID) {
			if rating, ok := r.Rating(playerID); ok {
				ratings = append(ratings, rating)
			}
		}
		out = append(out, domain.TeamRating{
			TeamID:  teamID,
			Name:    r.TeamName(teamID),
			Rating:  TopMean(ratings, topK, base),
			Players: len(ratings),
		})
	}
	domain.SortTeams(out)
	return out
}

// TopMean is the mean of the k largest values, or of all of them when k is
// zero or exceeds their number.
func TopMean(values []float64, k int, empty float64) float64 {
	if len(values) == 0 {
		return empty
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	if k > 0 && k < len(sorted) {
		sorted = sorted[:k]
	}
	var sum float64
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}
