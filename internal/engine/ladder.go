package engine

import (
	"github.com/goserg/courtrating/internal/config"
	"github.com/goserg/courtrating/internal/domain"
	"github.com/goserg/courtrating/internal/elo"
	glicko "github.com/zelenin/go-glicko2"
)

// Ladder rates teams from game outcomes alone. It never reads or changes
// player ratings.
type Ladder interface {
	Observe(game domain.GameRecord)
	Ratings() []domain.LadderRating
}

// NewLadder returns nil for the "none" mode.
func NewLadder(cfg config.TeamLadder) Ladder {
	switch cfg.Mode {
	case config.LadderElo:
		return NewEloLadder(cfg)
	case config.LadderGlicko2:
		return NewGlickoLadder(cfg)
	default:
		return nil
	}
}

// ReplayLadder feeds every scored game to the ladder in date order.
func ReplayLadder(l Ladder, games []domain.GameRecord) []domain.LadderRating {
	if l == nil {
		return nil
	}
	for _, game := range SortGames(games) {
		if game.Forfeited || game.HomeScore == nil || game.AwayScore == nil {
			continue
		}
		l.Observe(game)
	}
	return l.Ratings()
}

type ladderTeam struct {
	id     string
	name   string
	rating float64
	games  int
}

type teamBook struct {
	teams map[string]*ladderTeam
	order []string
}

func newTeamBook() teamBook {
	return teamBook{teams: make(map[string]*ladderTeam)}
}

func (b *teamBook) get(id, name string, base float64) *ladderTeam {
	t, ok := b.teams[id]
	if !ok {
		t = &ladderTeam{id: id, rating: base}
		b.teams[id] = t
		b.order = append(b.order, id)
	}
	if name != "" {
		t.name = name
	}
	return t
}

func (b *teamBook) ratings(deviation func(id string) float64) []domain.LadderRating {
	out := make([]domain.LadderRating, 0, len(b.order))
	for _, id := range b.order {
		t := b.teams[id]
		name := t.name
		if name == "" {
			name = id
		}
		r := domain.LadderRating{
			TeamID:      id,
			Name:        name,
			Rating:      t.rating,
			GamesPlayed: t.games,
		}
		if deviation != nil {
			r.Deviation = deviation(id)
		}
		out = append(out, r)
	}
	domain.SortLadder(out)
	return out
}

func points(game domain.GameRecord) (elo.Points, elo.Points) {
	switch game.Winner() {
	case "":
		return elo.Draw, elo.Draw
	case game.HomeTeamID:
		return elo.Win, elo.Lose
	default:
		return elo.Lose, elo.Win
	}
}

// EloLadder is pairwise team Elo.
type EloLadder struct {
	cfg  config.TeamLadder
	book teamBook
}

func NewEloLadder(cfg config.TeamLadder) *EloLadder {
	return &EloLadder{cfg: cfg, book: newTeamBook()}
}

func (l *EloLadder) Observe(game domain.GameRecord) {
	home := l.book.get(game.HomeTeamID, game.HomeTeamName, l.cfg.BaseRating)
	away := l.book.get(game.AwayTeamID, game.AwayTeamName, l.cfg.BaseRating)
	pointsHome, pointsAway := points(game)
	ratingHome, ratingAway := home.rating, away.rating
	home.rating = elo.Update(ratingHome, ratingAway, l.cfg.K, l.cfg.EloScale, pointsHome)
	away.rating = elo.Update(ratingAway, ratingHome, l.cfg.K, l.cfg.EloScale, pointsAway)
	home.games++
	away.games++
}

func (l *EloLadder) Ratings() []domain.LadderRating {
	return l.book.ratings(nil)
}

// GlickoLadder rates teams with Glicko-2, one rating period per game.
type GlickoLadder struct {
	base    float64
	book    teamBook
	players map[string]*glicko.Player
}

func NewGlickoLadder(cfg config.TeamLadder) *GlickoLadder {
	return &GlickoLadder{
		base:    cfg.BaseRating,
		book:    newTeamBook(),
		players: make(map[string]*glicko.Player),
	}
}

func (l *GlickoLadder) player(id string) *glicko.Player {
	p, ok := l.players[id]
	if !ok {
		p = glicko.NewPlayer(glicko.NewRating(l.base, glicko.RATING_BASE_RD, glicko.RATING_BASE_SIGMA))
		l.players[id] = p
	}
	return p
}

func (l *GlickoLadder) Observe(game domain.GameRecord) {
	home := l.book.get(game.HomeTeamID, game.HomeTeamName, l.base)
	away := l.book.get(game.AwayTeamID, game.AwayTeamName, l.base)
	p1 := l.player(home.id)
	p2 := l.player(away.id)

	period := glicko.NewRatingPeriod()
	period.AddPlayer(p1)
	period.AddPlayer(p2)
	switch pointsHome, _ := points(game); pointsHome {
	case elo.Win:
		period.AddMatch(p1, p2, glicko.MATCH_RESULT_WIN)
	case elo.Lose:
		period.AddMatch(p1, p2, glicko.MATCH_RESULT_LOSS)
	default:
		period.AddMatch(p1, p2, glicko.MATCH_RESULT_DRAW)
	}
	period.Calculate()

	home.rating = p1.Rating().R()
	away.rating = p2.Rating().R()
	home.games++
	away.games++
}

func (l *GlickoLadder) Ratings() []domain.LadderRating {
	return l.book.ratings(func(id string) float64 {
		return l.players[id].Rating().Rd()
	})
}
