package engine

import (
	"sort"
	"time"

	"github.com/goserg/courtrating/internal/domain"
)

type lineKey struct {
	date string
	team string
}

type lineIndex struct {
	lines map[lineKey][]domain.PlayerGameLine
	used  map[lineKey]bool
}

func indexLines(lines []domain.PlayerGameLine) lineIndex {
	idx := lineIndex{
		lines: make(map[lineKey][]domain.PlayerGameLine),
		used:  make(map[lineKey]bool),
	}
	for _, line := range lines {
		key := lineKey{date: domain.DateKey(line.GameDate), team: line.TeamID}
		idx.lines[key] = append(idx.lines[key], line)
	}
	return idx
}

// take returns the lines of team on date and marks them as matched.
func (x lineIndex) take(date time.Time, team string) []domain.PlayerGameLine {
	key := lineKey{date: domain.DateKey(date), team: team}
	lines, ok := x.lines[key]
	if ok {
		x.used[key] = true
	}
	return lines
}

func (x lineIndex) unmatched() int {
	var n int
	for key, lines := range x.lines {
		if !x.used[key] {
			n += len(lines)
		}
	}
	return n
}

// MergeLines merges lines reported more than once for the same player and
// team by summing their numeric fields. The order of first appearance is
// kept. It also returns how many lines were folded into an earlier one.
func MergeLines(lines []domain.PlayerGameLine) ([]domain.PlayerGameLine, int) {
	type key struct {
		player string
		team   string
	}
	merged := make([]domain.PlayerGameLine, 0, len(lines))
	pos := make(map[key]int, len(lines))
	var folded int
	for _, line := range lines {
		k := key{player: line.PlayerID, team: line.TeamID}
		if i, ok := pos[k]; ok {
			merged[i].Add(line)
			folded++
			continue
		}
		pos[k] = len(merged)
		merged = append(merged, line)
	}
	return merged, folded
}

// SortGames returns the games in chronological order. Games on the same
// date keep the order they were given in.
func SortGames(games []domain.GameRecord) []domain.GameRecord {
	sorted := make([]domain.GameRecord, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
