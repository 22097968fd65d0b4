package web

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/goserg/courtrating/internal/config"
	"github.com/goserg/courtrating/internal/domain"
	"github.com/goserg/courtrating/internal/normalize"
	"github.com/goserg/courtrating/internal/web/webpath"
	"github.com/sirupsen/logrus"
)

// RatingSource is the read side of the latest rating snapshot.
type RatingSource interface {
	Valid() bool
	GetPlayer(id string) (domain.PlayerRating, bool)
	GetPlayersByName(name string) []domain.PlayerRating
	GetRatings(grade, teamID string) []domain.PlayerRating
	GetTeams() []domain.TeamRating
	GetLadder() []domain.LadderRating
	GetRun() domain.RunInfo
}

// RunLister lists stored rating runs.
type RunLister interface {
	ListRuns(ctx context.Context) ([]domain.RunInfo, error)
}

type Server struct {
	ratings RatingSource
	runs    RunLister
	app     *fiber.App
	cfg     config.Server
	log     *logrus.Entry
}

// New builds the read-only rating API. runs may be nil.
func New(ratings RatingSource, runs RunLister, cfg config.Server, l *logrus.Logger) *Server {
	server := Server{
		ratings: ratings,
		runs:    runs,
		cfg:     cfg,
		log:     l.WithField("from", "web"),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: !cfg.Debug,
		ErrorHandler:          server.handleError,
	})
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.JSON(webpath.Path())
	})
	app.Use(webpath.Api, func(ctx *fiber.Ctx) error {
		if !ratings.Valid() {
			return fiber.NewError(fiber.StatusServiceUnavailable, "no rating snapshot loaded")
		}
		return ctx.Next()
	})
	app.Get(webpath.ApiPlayers, server.handlePlayers)
	app.Get(webpath.ApiPlayer, server.handlePlayer)
	app.Get(webpath.ApiTeams, server.handleTeams)
	app.Get(webpath.ApiLadder, server.handleLadder)
	app.Get(webpath.ApiReport, server.handleReport)
	app.Get(webpath.ApiRuns, server.handleRuns)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	s.log.WithField("addr", addr).Info("serving rating api")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	}
	return ctx.Status(code).JSON(newErrorData(err))
}

func (s *Server) handlePlayers(ctx *fiber.Ctx) error {
	q, err := parseListQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(newErrorData(err))
	}
	var players []domain.PlayerRating
	if q.Name != "" {
		players = filterPlayers(s.ratings.GetPlayersByName(q.Name), q)
	} else {
		players = s.ratings.GetRatings(q.Grade, q.Team)
	}
	start, end := q.window(len(players))
	return ctx.JSON(fiber.Map{
		"total":   len(players),
		"players": convertPlayers(players[start:end]),
	})
}

func filterPlayers(players []domain.PlayerRating, q listQuery) []domain.PlayerRating {
	if q.Grade == "" && q.Team == "" {
		return players
	}
	grade := normalize.Name(q.Grade)
	filtered := players[:0]
	for _, p := range players {
		if grade != "" && normalize.Name(p.Grade) != grade {
			continue
		}
		if q.Team != "" && p.TeamID != q.Team {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (s *Server) handlePlayer(ctx *fiber.Ctx) error {
	player, ok := s.ratings.GetPlayer(ctx.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "player not found")
	}
	return ctx.JSON(convertPlayer(player))
}

func (s *Server) handleTeams(ctx *fiber.Ctx) error {
	teams := s.ratings.GetTeams()
	return ctx.JSON(fiber.Map{
		"total": len(teams),
		"teams": convertTeams(teams),
	})
}

func (s *Server) handleLadder(ctx *fiber.Ctx) error {
	ladder := s.ratings.GetLadder()
	return ctx.JSON(fiber.Map{
		"total":  len(ladder),
		"ladder": convertLadder(ladder),
	})
}

func (s *Server) handleReport(ctx *fiber.Ctx) error {
	return ctx.JSON(convertRun(s.ratings.GetRun()))
}

func (s *Server) handleRuns(ctx *fiber.Ctx) error {
	if s.runs == nil {
		return fiber.NewError(fiber.StatusNotFound, "run history is not stored")
	}
	runs, err := s.runs.ListRuns(ctx.UserContext())
	if err != nil {
		return err
	}
	converted := make([]reportResponse, 0, len(runs))
	for _, run := range runs {
		converted = append(converted, convertRun(run))
	}
	return ctx.JSON(fiber.Map{
		"total": len(converted),
		"runs":  converted,
	})
}
