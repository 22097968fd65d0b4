package engine

import (
	"sort"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goserg/courtrating/internal/domain"
	"github.com/goserg/courtrating/internal/normalize"
)

// RunByGrade rates every grade on its own goroutine when the grades share
// no players. A line belongs to the grade of the game it is matched to by
// date and team, whatever grade label it carries. When grades share players
// or one date and team pair appears in two grades, it falls back to one
// chronological stream over all games.
func (e *Engine) RunByGrade(games []domain.GameRecord, lines []domain.PlayerGameLine) Result {
	var grades []string
	gameGroups := make(map[string][]domain.GameRecord)
	gradeOf := make(map[lineKey]string)
	for _, game := range games {
		grade := normalize.Name(game.Grade)
		if _, ok := gameGroups[grade]; !ok {
			grades = append(grades, grade)
		}
		gameGroups[grade] = append(gameGroups[grade], game)
		for _, team := range []string{game.HomeTeamID, game.AwayTeamID} {
			key := lineKey{date: domain.DateKey(game.Date), team: team}
			if prev, ok := gradeOf[key]; ok && prev != grade {
				e.log.WithField("team", team).
					WithField("date", key.date).
					Warn("team plays in two grades on one date, rating all grades as one stream")
				return e.Run(games, lines)
			}
			gradeOf[key] = grade
		}
	}

	lineGroups := make(map[string][]domain.PlayerGameLine)
	pools := make(map[string]mapset.Set[string])
	var orphans int
	for _, line := range lines {
		grade, ok := gradeOf[lineKey{date: domain.DateKey(line.GameDate), team: line.TeamID}]
		if !ok {
			orphans++
			continue
		}
		lineGroups[grade] = append(lineGroups[grade], line)
		if _, ok := pools[grade]; !ok {
			pools[grade] = mapset.NewThreadUnsafeSet[string]()
		}
		pools[grade].Add(line.PlayerID)
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	for _, grade := range grades {
		pool, ok := pools[grade]
		if !ok {
			continue
		}
		if shared := seen.Intersect(pool); shared.Cardinality() > 0 {
			e.log.WithField("grade", grade).
				WithField("shared_players", shared.Cardinality()).
				Warn("grades share players, rating all grades as one stream")
			return e.Run(games, lines)
		}
		seen = seen.Union(pool)
	}

	results := make([]Result, len(grades))
	var wg sync.WaitGroup
	for i, grade := range grades {
		wg.Add(1)
		go func(i int, grade string) {
			defer wg.Done()
			results[i] = e.Run(gameGroups[grade], lineGroups[grade])
		}(i, grade)
	}
	wg.Wait()

	merged := Result{Store: NewStore(e.cfg.BaseRating)}
	for _, r := range results {
		merged.Store.absorb(r.Store)
		merged.Report.Add(r.Report)
		merged.Updates = append(merged.Updates, r.Updates...)
	}
	sort.SliceStable(merged.Updates, func(i, j int) bool {
		return merged.Updates[i].Date.Before(merged.Updates[j].Date)
	})
	for i := range merged.Updates {
		merged.Updates[i].Seq = i + 1
	}
	merged.Report.LinesUnmatched += orphans
	merged.Report.PlayersRated = merged.Store.Len()
	return merged
}
