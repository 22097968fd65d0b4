package engine

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goserg/courtrating/internal/domain"
)

// PlayerState is the current rating of one player.
type PlayerState struct {
	ID     string
	Name   string
	TeamID string
	Grade  string
	Rating float64
	Games  int
}

// Store holds the ratings of one run. It is owned by a single engine and
// is not safe for concurrent use.
type Store struct {
	base      float64
	players   map[string]*PlayerState
	order     []string
	rosters   map[string]mapset.Set[string]
	teamNames map[string]string
	teams     []string
}

func NewStore(base float64) *Store {
	return &Store{
		base:      base,
		players:   make(map[string]*PlayerState),
		rosters:   make(map[string]mapset.Set[string]),
		teamNames: make(map[string]string),
	}
}

func (s *Store) BaseRating() float64 {
	return s.base
}

func (s *Store) Rating(playerID string) (float64, bool) {
	p, ok := s.players[playerID]
	if !ok {
		return 0, false
	}
	return p.Rating, true
}

func (s *Store) Player(playerID string) (PlayerState, bool) {
	p, ok := s.players[playerID]
	if !ok {
		return PlayerState{}, false
	}
	return *p, true
}

func (s *Store) Len() int {
	return len(s.players)
}

// Teams returns every team seen by the run in order of first appearance.
func (s *Store) Teams() []string {
	teams := make([]string, len(s.teams))
	copy(teams, s.teams)
	return teams
}

// TeamName is the most recent display name of the team, or its id.
func (s *Store) TeamName(teamID string) string {
	if name := s.teamNames[teamID]; name != "" {
		return name
	}
	return teamID
}

// Roster lists every player who ever played for the team.
func (s *Store) Roster(teamID string) []string {
	roster, ok := s.rosters[teamID]
	if !ok {
		return nil
	}
	ids := roster.ToSlice()
	sort.Strings(ids)
	return ids
}

func (s *Store) noteTeam(teamID, name string) {
	if teamID == "" {
		return
	}
	if _, ok := s.rosters[teamID]; !ok {
		s.rosters[teamID] = mapset.NewThreadUnsafeSet[string]()
		s.teams = append(s.teams, teamID)
	}
	if name != "" {
		s.teamNames[teamID] = name
	}
}

// ensure returns the state of the player, creating it with the given
// initial rating on first sight.
func (s *Store) ensure(playerID string, initial float64) *PlayerState {
	p, ok := s.players[playerID]
	if !ok {
		p = &PlayerState{ID: playerID, Rating: initial}
		s.players[playerID] = p
		s.order = append(s.order, playerID)
	}
	return p
}

// record stores the latest identity of a player seen in a rated game.
func (s *Store) record(p *PlayerState, line domain.PlayerGameLine) {
	if line.PlayerName != "" {
		p.Name = line.PlayerName
	}
	p.TeamID = line.TeamID
	if line.Grade != "" {
		p.Grade = line.Grade
	}
	s.noteTeam(line.TeamID, "")
	s.rosters[line.TeamID].Add(p.ID)
}

// absorb moves everything from other into s. Player pools must be disjoint.
func (s *Store) absorb(other *Store) {
	for _, id := range other.order {
		p := *other.players[id]
		s.players[id] = &p
		s.order = append(s.order, id)
	}
	for _, teamID := range other.teams {
		s.noteTeam(teamID, other.teamNames[teamID])
		s.rosters[teamID] = s.rosters[teamID].Union(other.rosters[teamID])
	}
}

// Players returns the rating table with resolved names, best first.
func (s *Store) Players() []domain.PlayerRating {
	players := make([]domain.PlayerRating, 0, len(s.players))
	for _, id := range s.order {
		p := s.players[id]
		name := p.Name
		if name == "" {
			name = p.ID
		}
		players = append(players, domain.PlayerRating{
			PlayerID:    p.ID,
			Name:        name,
			TeamID:      p.TeamID,
			TeamName:    s.TeamName(p.TeamID),
			Grade:       p.Grade,
			Rating:      p.Rating,
			GamesPlayed: p.Games,
		})
	}
	domain.SortPlayers(players)
	return players
}
