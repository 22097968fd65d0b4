package loader

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goserg/courtrating/internal/domain"
	"github.com/sirupsen/logrus"
)

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrMissingColumn   = errors.New("missing column")
)

// Input is everything a rating run reads.
type Input struct {
	Games []domain.GameRecord
	Lines []domain.PlayerGameLine
	// Grades in order of first appearance in the game table.
	Grades         []string
	MalformedGames int
	MalformedLines int
}

type Loader struct {
	log *logrus.Entry
}

func New(l *logrus.Logger) *Loader {
	return &Loader{
		log: l.WithField("from", "loader"),
	}
}

func (l *Loader) LoadFiles(gamesPath, linesPath string) (Input, error) {
	games, err := os.Open(gamesPath)
	if err != nil {
		return Input{}, err
	}
	defer games.Close()
	lines, err := os.Open(linesPath)
	if err != nil {
		return Input{}, err
	}
	defer lines.Close()
	return l.Load(games, lines)
}

func (l *Loader) Load(games, lines io.Reader) (Input, error) {
	var (
		in  Input
		err error
	)
	in.Games, in.MalformedGames, err = l.ReadGames(games)
	if err != nil {
		return Input{}, fmt.Errorf("games: %w", err)
	}
	in.Lines, in.MalformedLines, err = l.ReadLines(lines)
	if err != nil {
		return Input{}, fmt.Errorf("player lines: %w", err)
	}
	seen := make(map[string]bool)
	for _, g := range in.Games {
		if g.Grade != "" && !seen[g.Grade] {
			seen[g.Grade] = true
			in.Grades = append(in.Grades, g.Grade)
		}
	}
	l.log.WithFields(logrus.Fields{
		"games":           len(in.Games),
		"lines":           len(in.Lines),
		"grades":          len(in.Grades),
		"malformed_games": in.MalformedGames,
		"malformed_lines": in.MalformedLines,
	}).Info("input loaded")
	return in, nil
}

// ReadGames parses the game table. Bad rows are logged and counted, not
// returned as errors.
func (l *Loader) ReadGames(r io.Reader) ([]domain.GameRecord, int, error) {
	t, err := openTable(r)
	if err != nil {
		return nil, 0, err
	}
	if err := t.require("date"); err != nil {
		return nil, 0, err
	}
	if err := t.requireAny("home_team_id", "home_team"); err != nil {
		return nil, 0, err
	}
	if err := t.requireAny("away_team_id", "away_team"); err != nil {
		return nil, 0, err
	}
	var (
		games     []domain.GameRecord
		malformed int
	)
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err == nil {
			var game domain.GameRecord
			game, err = parseGame(t, rec)
			if err == nil {
				games = append(games, game)
				continue
			}
		}
		malformed++
		l.log.WithFields(logrus.Fields{"table": "games", "row": t.row}).WithError(err).Warn("malformed record skipped")
	}
	return games, malformed, nil
}

// ReadLines parses the player-line table.
func (l *Loader) ReadLines(r io.Reader) ([]domain.PlayerGameLine, int, error) {
	t, err := openTable(r)
	if err != nil {
		return nil, 0, err
	}
	if err := t.require("game_date", "team", "player_id"); err != nil {
		return nil, 0, err
	}
	var (
		lines     []domain.PlayerGameLine
		malformed int
	)
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err == nil {
			var line domain.PlayerGameLine
			line, err = parseLine(t, rec)
			if err == nil {
				lines = append(lines, line)
				continue
			}
		}
		malformed++
		l.log.WithFields(logrus.Fields{"table": "player_lines", "row": t.row}).WithError(err).Warn("malformed record skipped")
	}
	return lines, malformed, nil
}

func parseGame(t *table, rec []string) (domain.GameRecord, error) {
	malformed := func(field string, err error) error {
		return fmt.Errorf("%w: row %d: %s: %v", ErrMalformedRecord, t.row, field, err)
	}
	date, err := ParseDate(t.get(rec, "date"))
	if err != nil {
		return domain.GameRecord{}, malformed("date", err)
	}
	home := t.get(rec, "home_team_id", "home_team")
	away := t.get(rec, "away_team_id", "away_team")
	if home == "" || away == "" {
		return domain.GameRecord{}, malformed("team", errors.New("empty team identifier"))
	}
	if home == away {
		return domain.GameRecord{}, malformed("team", fmt.Errorf("team %q plays itself", home))
	}
	homeScore, homeOK, err := parseCount(t.get(rec, "home_score"))
	if err != nil {
		return domain.GameRecord{}, malformed("home_score", err)
	}
	awayScore, awayOK, err := parseCount(t.get(rec, "away_score"))
	if err != nil {
		return domain.GameRecord{}, malformed("away_score", err)
	}
	if homeOK != awayOK {
		return domain.GameRecord{}, malformed("score", errors.New("only one score present"))
	}
	forfeited, err := parseBool(t.get(rec, "forfeit"))
	if err != nil {
		return domain.GameRecord{}, malformed("forfeit", err)
	}

	game := domain.GameRecord{
		Grade:        t.get(rec, "grade"),
		Round:        t.get(rec, "round"),
		Date:         date,
		HomeTeamID:   home,
		AwayTeamID:   away,
		Forfeited:    forfeited || !homeOK,
		BoxScoreLink: t.get(rec, "box_score_link"),
		Row:          t.row,
	}
	if t.has("home_team_id") {
		game.HomeTeamName = t.get(rec, "home_team")
	}
	if t.has("away_team_id") {
		game.AwayTeamName = t.get(rec, "away_team")
	}
	if !game.Forfeited {
		game.HomeScore = domain.Score(homeScore)
		game.AwayScore = domain.Score(awayScore)
	}
	return game, nil
}

func parseLine(t *table, rec []string) (domain.PlayerGameLine, error) {
	malformed := func(field string, err error) error {
		return fmt.Errorf("%w: row %d: %s: %v", ErrMalformedRecord, t.row, field, err)
	}
	date, err := ParseDate(t.get(rec, "game_date"))
	if err != nil {
		return domain.PlayerGameLine{}, malformed("game_date", err)
	}
	line := domain.PlayerGameLine{
		Grade:      t.get(rec, "grade"),
		Round:      t.get(rec, "round"),
		GameDate:   date,
		TeamID:     t.get(rec, "team"),
		PlayerID:   t.get(rec, "player_id"),
		PlayerName: t.get(rec, "player_name"),
		Jersey:     t.get(rec, "jersey"),
		Row:        t.row,
	}
	if line.TeamID == "" {
		return domain.PlayerGameLine{}, malformed("team", errors.New("empty"))
	}
	if line.PlayerID == "" {
		return domain.PlayerGameLine{}, malformed("player_id", errors.New("empty"))
	}
	counts := []struct {
		column string
		dst    *int
	}{
		{"points", &line.Points},
		{"1pm", &line.Made1},
		{"2pm", &line.Made2},
		{"3pm", &line.Made3},
		{"fouls", &line.Fouls},
	}
	for _, c := range counts {
		v, _, err := parseCount(t.get(rec, c.column))
		if err != nil {
			return domain.PlayerGameLine{}, malformed(c.column, err)
		}
		*c.dst = v
	}
	return line, nil
}

var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2/1/2006",
	"Monday, 2 January 2006",
	"Mon, 2 Jan 2006",
	"Monday 2 January 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate reads a calendar date in any of the layouts the fixture
// scrapers are known to write. The clock part is dropped.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// parseCount reads a non-negative integer. Blank means absent and zero.
// Integral floats such as "50.0" are accepted.
func parseCount(s string) (int, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, false, fmt.Errorf("not an integer: %q", s)
		}
		v = int(f)
	}
	if v < 0 {
		return 0, false, fmt.Errorf("negative value: %d", v)
	}
	return v, true, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "f", "0", "no", "n":
		return false, nil
	case "true", "t", "1", "yes", "y":
		return true, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", s)
	}
}
