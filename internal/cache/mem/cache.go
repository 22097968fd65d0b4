package mem

import (
	"sync"

	"github.com/goserg/courtrating/internal/domain"
	"github.com/goserg/courtrating/internal/normalize"
)

// Cache holds the latest rating snapshot for readers.
type Cache struct {
	mu       sync.RWMutex
	valid    bool
	snapshot domain.Snapshot
	byID     map[string]domain.PlayerRating
	byName   map[string][]domain.PlayerRating
}

func New() *Cache {
	return &Cache{
		byID:   make(map[string]domain.PlayerRating),
		byName: make(map[string][]domain.PlayerRating),
	}
}

// Update replaces the cached snapshot. The tables must already be sorted.
func (c *Cache) Update(snapshot domain.Snapshot) {
	byID := make(map[string]domain.PlayerRating, len(snapshot.Players))
	byName := make(map[string][]domain.PlayerRating, len(snapshot.Players))
	for _, p := range snapshot.Players {
		byID[p.PlayerID] = p
		name := normalize.Name(p.Name)
		byName[name] = append(byName[name], p)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = snapshot
	c.byID = byID
	c.byName = byName
	c.valid = true
}

func (c *Cache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valid
}

func (c *Cache) GetPlayer(id string) (domain.PlayerRating, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	player, ok := c.byID[id]
	return player, ok
}

// GetPlayersByName returns every player whose name matches after
// normalisation, best rated first.
func (c *Cache) GetPlayersByName(name string) []domain.PlayerRating {
	c.mu.RLock()
	defer c.mu.RUnlock()

	players := c.byName[normalize.Name(name)]
	out := make([]domain.PlayerRating, len(players))
	copy(out, players)
	return out
}

// GetRatings returns the player table, optionally restricted to one grade
// or team. Empty filters match everything.
func (c *Cache) GetRatings(grade, teamID string) []domain.PlayerRating {
	c.mu.RLock()
	defer c.mu.RUnlock()

	grade = normalize.Name(grade)
	players := make([]domain.PlayerRating, 0, len(c.snapshot.Players))
	for _, p := range c.snapshot.Players {
		if grade != "" && normalize.Name(p.Grade) != grade {
			continue
		}
		if teamID != "" && p.TeamID != teamID {
			continue
		}
		players = append(players, p)
	}
	return players
}

func (c *Cache) GetTeams() []domain.TeamRating {
	c.mu.RLock()
	defer c.mu.RUnlock()

	teams := make([]domain.TeamRating, len(c.snapshot.Teams))
	copy(teams, c.snapshot.Teams)
	return teams
}

func (c *Cache) GetLadder() []domain.LadderRating {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ladder := make([]domain.LadderRating, len(c.snapshot.Ladder))
	copy(ladder, c.snapshot.Ladder)
	return ladder
}

func (c *Cache) GetRun() domain.RunInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.RunInfo{
		RunID:     c.snapshot.RunID,
		CreatedAt: c.snapshot.CreatedAt,
		Report:    c.snapshot.Report,
	}
}
