package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goserg/courtrating/internal/domain"
	"github.com/goserg/courtrating/internal/storage"
	"github.com/sirupsen/logrus"
)

const (
	PlayersFile = "player_ratings.csv"
	TeamsFile   = "team_ratings.csv"
	LadderFile  = "team_ladder.csv"
	UpdatesFile = "game_updates.csv"
)

var (
	playerHeader = []string{"rank", "player_id", "player_name", "team_id", "team", "grade", "rating", "games_played"}
	teamHeader   = []string{"rank", "team_id", "team", "rating", "players"}
	ladderHeader = []string{"rank", "team_id", "team", "rating", "deviation", "games_played"}
	updateHeader = []string{
		"seq", "grade", "round", "date", "home_team_id", "away_team_id", "winner_team_id",
		"player_id", "team_id", "performance", "actual_share", "expected_share", "k",
		"rating_before", "rating_after", "delta",
	}
)

// Writer writes the rating tables of a run as CSV files into one directory.
type Writer struct {
	dir          string
	writeUpdates bool
	log          *logrus.Entry
}

var _ storage.TableWriter = (*Writer)(nil)

func New(l *logrus.Logger, dir string, writeUpdates bool) *Writer {
	return &Writer{
		dir:          dir,
		writeUpdates: writeUpdates,
		log:          l.WithField("from", "csv-writer"),
	}
}

func (w *Writer) WriteTables(snapshot domain.Snapshot, updates []domain.GameUpdate) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}
	err := writeFile(filepath.Join(w.dir, PlayersFile), playerHeader, playerRows(snapshot.Players))
	if err != nil {
		return err
	}
	err = writeFile(filepath.Join(w.dir, TeamsFile), teamHeader, teamRows(snapshot.Teams))
	if err != nil {
		return err
	}
	err = writeFile(filepath.Join(w.dir, LadderFile), ladderHeader, ladderRows(snapshot.Ladder))
	if err != nil {
		return err
	}
	if w.writeUpdates {
		err = writeFile(filepath.Join(w.dir, UpdatesFile), updateHeader, updateRows(updates))
		if err != nil {
			return err
		}
	}
	w.log.WithFields(logrus.Fields{
		"dir":     w.dir,
		"players": len(snapshot.Players),
		"teams":   len(snapshot.Teams),
	}).Info("rating tables written")
	return nil
}

// writeFile replaces path atomically so readers never see a partial table.
func writeFile(path string, header []string, rows [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	cw := csv.NewWriter(tmp)
	if err := cw.Write(header); err != nil {
		return errors.Join(err, tmp.Close())
	}
	if err := cw.WriteAll(rows); err != nil {
		return errors.Join(fmt.Errorf("write %s: %w", filepath.Base(path), err), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func rating(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func playerRows(players []domain.PlayerRating) [][]string {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{
			strconv.Itoa(p.RatingRank),
			p.PlayerID,
			p.Name,
			p.TeamID,
			p.TeamName,
			p.Grade,
			rating(p.Rating),
			strconv.Itoa(p.GamesPlayed),
		})
	}
	return rows
}

func teamRows(teams []domain.TeamRating) [][]string {
	rows := make([][]string, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, []string{
			strconv.Itoa(t.RatingRank),
			t.TeamID,
			t.Name,
			rating(t.Rating),
			strconv.Itoa(t.Players),
		})
	}
	return rows
}

func ladderRows(ladder []domain.LadderRating) [][]string {
	rows := make([][]string, 0, len(ladder))
	for _, t := range ladder {
		rows = append(rows, []string{
			strconv.Itoa(t.RatingRank),
			t.TeamID,
			t.Name,
			rating(t.Rating),
			rating(t.Deviation),
			strconv.Itoa(t.GamesPlayed),
		})
	}
	return rows
}

func updateRows(updates []domain.GameUpdate) [][]string {
	var rows [][]string
	for _, u := range updates {
		for _, p := range u.Participants {
			rows = append(rows, []string{
				strconv.Itoa(u.Seq),
				u.Grade,
				u.Round,
				domain.DateKey(u.Date),
				u.HomeTeamID,
				u.AwayTeamID,
				u.WinnerTeamID,
				p.PlayerID,
				p.TeamID,
				rating(p.Performance),
				rating(p.ActualShare),
				rating(p.ExpectedShare),
				rating(p.K),
				rating(p.RatingBefore),
				rating(p.RatingAfter),
				rating(p.Delta()),
			})
		}
	}
	return rows
}
