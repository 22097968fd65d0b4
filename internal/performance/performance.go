package performance

import (
	"fmt"
	"math"

	"github.com/goserg/courtrating/internal/config"
	"github.com/goserg/courtrating/internal/domain"
)

type Formula string

const (
	// Points is points scored minus the foul penalty.
	Points Formula = config.FormulaPoints
	// WeightedMakes is 1PM + 2*2PM + 3*3PM minus the foul penalty.
	WeightedMakes Formula = config.FormulaWeightedMakes
)

// Model turns a box-score line into the performance value a player is
// rated on. One Model uses exactly one formula.
type Model struct {
	formula     Formula
	foulPenalty float64
	winBonusPct float64
	minPerf     float64
}

func New(cfg config.Performance) (Model, error) {
	f := Formula(cfg.Formula)
	if f != Points && f != WeightedMakes {
		return Model{}, fmt.Errorf("%w: unknown performance formula %q", config.ErrInvalidConfig, cfg.Formula)
	}
	if !(cfg.MinPerf > 0) {
		return Model{}, fmt.Errorf("%w: min_perf must be positive, got %v", config.ErrInvalidConfig, cfg.MinPerf)
	}
	return Model{
		formula:     f,
		foulPenalty: cfg.FoulPenalty,
		winBonusPct: cfg.WinBonusPct,
		minPerf:     cfg.MinPerf,
	}, nil
}

// Formula reports which formula the model rates lines with.
func (m Model) Formula() Formula {
	return m.formula
}

// Raw is the unclamped value of the line under the model's formula.
func (m Model) Raw(line domain.PlayerGameLine) float64 {
	var v float64
	switch m.formula {
	case WeightedMakes:
		v = float64(line.Made1) + 2*float64(line.Made2) + 3*float64(line.Made3)
	default:
		v = float64(line.Points)
	}
	return v - m.foulPenalty*float64(line.Fouls)
}

// Base is the floored raw value before any win bonus.
func (m Model) Base(line domain.PlayerGameLine) float64 {
	return math.Max(m.Raw(line), m.minPerf)
}

// Performance is always >= min_perf. Players of the winning team get the
// win bonus; nobody does in a draw.
func (m Model) Performance(line domain.PlayerGameLine, isWinningTeam bool) float64 {
	v := m.Base(line)
	if isWinningTeam {
		v *= 1 + m.winBonusPct
	}
	return math.Max(v, m.minPerf)
}
