package engine

import (
	"github.com/goserg/courtrating/internal/config"
	"github.com/goserg/courtrating/internal/domain"
	"github.com/goserg/courtrating/internal/elo"
	"github.com/goserg/courtrating/internal/normalize"
	"github.com/goserg/courtrating/internal/performance"
	"github.com/sirupsen/logrus"
)

// Engine replays games in chronological order and rates every player on
// their share of the game's total performance against the share their
// rating predicted.
type Engine struct {
	cfg   config.Rating
	perf  performance.Model
	ranks map[string]int
	log   *logrus.Entry
}

type Result struct {
	Store   *Store
	Updates []domain.GameUpdate
	Report  domain.RunReport
}

// New creates an engine. grades is the discovery order of grades in the
// input, used for starting offsets when cfg.GradeOrder is empty.
func New(cfg config.Rating, perf performance.Model, grades []string, l *logrus.Logger) *Engine {
	order := cfg.GradeOrder
	if len(order) == 0 {
		order = grades
	}
	ranks := make(map[string]int, len(order))
	for _, grade := range order {
		key := normalize.Name(grade)
		if _, ok := ranks[key]; !ok {
			ranks[key] = len(ranks)
		}
	}
	return &Engine{
		cfg:   cfg,
		perf:  perf,
		ranks: ranks,
		log:   l.WithField("from", "engine"),
	}
}

// InitialRating is the rating a new player of the grade starts with.
// The top grade has rank 0; unranked grades start at the base rating.
func (e *Engine) InitialRating(grade string) float64 {
	rank, ok := e.ranks[normalize.Name(grade)]
	if !ok {
		return e.cfg.BaseRating
	}
	return e.cfg.BaseRating - e.cfg.GradeOffsetStep*float64(rank)
}

// K is the learning rate for a player's n-th game.
func (e *Engine) K(n int) float64 {
	if e.cfg.KMode == config.KModeDynamic {
		games := float64(n)
		return e.cfg.K * games / (games + e.cfg.DynamicKSmoothing)
	}
	return e.cfg.K
}

// Run rates the games in date order. Forfeits and games without any
// player lines are skipped and counted in the report. A game with lines for
// one team only is rated over the players it has.
func (e *Engine) Run(games []domain.GameRecord, lines []domain.PlayerGameLine) Result {
	store := NewStore(e.cfg.BaseRating)
	index := indexLines(lines)
	var (
		report  domain.RunReport
		updates []domain.GameUpdate
	)
	for _, game := range SortGames(games) {
		report.GamesTotal++
		store.noteTeam(game.HomeTeamID, game.HomeTeamName)
		store.noteTeam(game.AwayTeamID, game.AwayTeamName)
		home := index.take(game.Date, game.HomeTeamID)
		away := index.take(game.Date, game.AwayTeamID)

		log := e.log.WithFields(logrus.Fields{
			"grade": game.Grade,
			"round": game.Round,
			"date":  domain.DateKey(game.Date),
			"home":  game.HomeTeamID,
			"away":  game.AwayTeamID,
		})
		if game.Forfeited {
			report.GamesForfeited++
			log.Debug("forfeited game skipped")
			continue
		}
		if len(home)+len(away) == 0 {
			report.GamesMissingParticipants++
			log.WithFields(logrus.Fields{
				"home_lines": len(home),
				"away_lines": len(away),
			}).Warn("game without player lines skipped")
			continue
		}

		pooled := make([]domain.PlayerGameLine, 0, len(home)+len(away))
		pooled = append(pooled, home...)
		pooled = append(pooled, away...)
		participants, folded := MergeLines(pooled)
		report.DuplicateLinesMerged += folded

		update := e.rateGame(store, game, participants)
		update.Seq = len(updates) + 1
		updates = append(updates, update)
		report.GamesRated++
		log.WithField("participants", len(participants)).Trace("game rated")
	}
	report.LinesUnmatched = index.unmatched()
	report.PlayersRated = store.Len()
	return Result{
		Store:   store,
		Updates: updates,
		Report:  report,
	}
}

func (e *Engine) rateGame(store *Store, game domain.GameRecord, lines []domain.PlayerGameLine) domain.GameUpdate {
	winner := game.Winner()
	n := len(lines)
	perf := make([]float64, n)
	ratings := make([]float64, n)
	states := make([]*PlayerState, n)
	for i := range lines {
		if lines[i].Grade == "" {
			lines[i].Grade = game.Grade
		}
		perf[i] = e.perf.Performance(lines[i], winner != "" && lines[i].TeamID == winner)
		states[i] = store.ensure(lines[i].PlayerID, e.InitialRating(lines[i].Grade))
		ratings[i] = states[i].Rating
	}
	actual := elo.Shares(perf)
	expected := elo.Distribution(ratings, e.cfg.EloScale)

	// Deltas come from the ratings everyone had before the game.
	deltas := make([]float64, n)
	participants := make([]domain.Participant, n)
	for i := range lines {
		k := e.K(states[i].Games + 1)
		deltas[i] = k * (actual[i] - expected[i])
		participants[i] = domain.Participant{
			PlayerID:      lines[i].PlayerID,
			TeamID:        lines[i].TeamID,
			Performance:   perf[i],
			ActualShare:   actual[i],
			ExpectedShare: expected[i],
			K:             k,
			RatingBefore:  ratings[i],
		}
	}
	for i := range lines {
		states[i].Rating += deltas[i]
		states[i].Games++
		store.record(states[i], lines[i])
		participants[i].RatingAfter = states[i].Rating
	}
	return domain.GameUpdate{
		Grade:        game.Grade,
		Round:        game.Round,
		Date:         game.Date,
		HomeTeamID:   game.HomeTeamID,
		AwayTeamID:   game.AwayTeamID,
		WinnerTeamID: winner,
		Participants: participants,
	}
}
