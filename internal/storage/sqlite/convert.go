package sqlite

import (
	"github.com/google/uuid"
	"github.com/goserg/courtrating/gen/model"
	"github.com/goserg/courtrating/internal/domain"
)

func convertRunFromDomain(snapshot domain.Snapshot) model.Runs {
	r := snapshot.Report
	return model.Runs{
		ID:                       snapshot.RunID.String(),
		CreatedAt:                snapshot.CreatedAt.UTC(),
		GamesTotal:               int32(r.GamesTotal),
		GamesRated:               int32(r.GamesRated),
		GamesForfeited:           int32(r.GamesForfeited),
		GamesMissingParticipants: int32(r.GamesMissingParticipants),
		MalformedGames:           int32(r.MalformedGames),
		MalformedLines:           int32(r.MalformedLines),
		DuplicateLinesMerged:     int32(r.DuplicateLinesMerged),
		LinesUnmatched:           int32(r.LinesUnmatched),
		PlayersRated:             int32(r.PlayersRated),
		TeamsRated:               int32(r.TeamsRated),
	}
}

func convertRunToDomain(run model.Runs) (domain.RunInfo, error) {
	id, err := parseRunID(run.ID)
	if err != nil {
		return domain.RunInfo{}, err
	}
	return domain.RunInfo{
		RunID:     id,
		CreatedAt: run.CreatedAt.UTC(),
		Report: domain.RunReport{
			GamesTotal:               int(run.GamesTotal),
			GamesRated:               int(run.GamesRated),
			GamesForfeited:           int(run.GamesForfeited),
			GamesMissingParticipants: int(run.GamesMissingParticipants),
			MalformedGames:           int(run.MalformedGames),
			MalformedLines:           int(run.MalformedLines),
			DuplicateLinesMerged:     int(run.DuplicateLinesMerged),
			LinesUnmatched:           int(run.LinesUnmatched),
			PlayersRated:             int(run.PlayersRated),
			TeamsRated:               int(run.TeamsRated),
		},
	}, nil
}

func convertPlayersFromDomain(runID uuid.UUID, players []domain.PlayerRating) []model.PlayerRatings {
	converted := make([]model.PlayerRatings, 0, len(players))
	for _, p := range players {
		converted = append(converted, model.PlayerRatings{
			RunID:       runID.String(),
			PlayerID:    p.PlayerID,
			Name:        p.Name,
			TeamID:      p.TeamID,
			TeamName:    p.TeamName,
			Grade:       p.Grade,
			Rating:      p.Rating,
			GamesPlayed: int32(p.GamesPlayed),
			RatingRank:  int32(p.RatingRank),
		})
	}
	return converted
}

func convertPlayersToDomain(players []model.PlayerRatings) []domain.PlayerRating {
	converted := make([]domain.PlayerRating, 0, len(players))
	for _, p := range players {
		converted = append(converted, domain.PlayerRating{
			PlayerID:    p.PlayerID,
			Name:        p.Name,
			TeamID:      p.TeamID,
			TeamName:    p.TeamName,
			Grade:       p.Grade,
			Rating:      p.Rating,
			GamesPlayed: int(p.GamesPlayed),
			RatingRank:  int(p.RatingRank),
		})
	}
	return converted
}

func convertTeamsFromDomain(runID uuid.UUID, teams []domain.TeamRating) []model.TeamRatings {
	converted := make([]model.TeamRatings, 0, len(teams))
	for _, t := range teams {
		converted = append(converted, model.TeamRatings{
			RunID:      runID.String(),
			TeamID:     t.TeamID,
			Name:       t.Name,
			Rating:     t.Rating,
			Players:    int32(t.Players),
			RatingRank: int32(t.RatingRank),
		})
	}
	return converted
}

func convertTeamsToDomain(teams []model.TeamRatings) []domain.TeamRating {
	converted := make([]domain.TeamRating, 0, len(teams))
	for _, t := range teams {
		converted = append(converted, domain.TeamRating{
			TeamID:     t.TeamID,
			Name:       t.Name,
			Rating:     t.Rating,
			Players:    int(t.Players),
			RatingRank: int(t.RatingRank),
		})
	}
	return converted
}

func convertLadderFromDomain(runID uuid.UUID, ladder []domain.LadderRating) []model.TeamLadder {
	converted := make([]model.TeamLadder, 0, len(ladder))
	for _, t := range ladder {
		converted = append(converted, model.TeamLadder{
			RunID:       runID.String(),
			TeamID:      t.TeamID,
			Name:        t.Name,
			Rating:      t.Rating,
			Deviation:   t.Deviation,
			GamesPlayed: int32(t.GamesPlayed),
			RatingRank:  int32(t.RatingRank),
		})
	}
	return converted
}

func convertLadderToDomain(ladder []model.TeamLadder) []domain.LadderRating {
	converted := make([]domain.LadderRating, 0, len(ladder))
	for _, t := range ladder {
		converted = append(converted, domain.LadderRating{
			TeamID:      t.TeamID,
			Name:        t.Name,
			Rating:      t.Rating,
			Deviation:   t.Deviation,
			GamesPlayed: int(t.GamesPlayed),
			RatingRank:  int(t.RatingRank),
		})
	}
	return converted
}
