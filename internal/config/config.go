package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	KModeFixed   = "fixed"
	KModeDynamic = "dynamic"

	FormulaPoints        = "points"
	FormulaWeightedMakes = "weighted_makes"

	LadderNone    = "none"
	LadderElo     = "elo"
	LadderGlicko2 = "glicko2"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Rating struct {
	BaseRating        float64  `toml:"base_rating"`
	K                 float64  `toml:"k"`
	KMode             string   `toml:"k_mode"`
	DynamicKSmoothing float64  `toml:"dynamic_k_smoothing"`
	EloScale          float64  `toml:"elo_scale"`
	GradeOffsetStep   float64  `toml:"grade_offset_step"`
	GradeOrder        []string `toml:"grade_order"`
	ParallelGrades    bool     `toml:"parallel_grades"`
}

type Performance struct {
	Formula     string  `toml:"formula"`
	FoulPenalty float64 `toml:"foul_penalty"`
	WinBonusPct float64 `toml:"win_bonus_pct"`
	MinPerf     float64 `toml:"min_perf"`
}

type TeamLadder struct {
	Mode       string  `toml:"mode"`
	BaseRating float64 `toml:"base_rating"`
	K          float64 `toml:"k"`
	EloScale   float64 `toml:"elo_scale"`
}

type Aggregate struct {
	// TopK is the number of best players averaged into a team rating.
	// Zero averages the whole roster.
	TopK int `toml:"top_k"`
}

type Input struct {
	GamesFile string `toml:"games_file"`
	LinesFile string `toml:"lines_file"`
}

type Output struct {
	Dir          string `toml:"dir"`
	WriteUpdates bool   `toml:"write_updates"`
}

type Storage struct {
	SqliteFile string `toml:"sqlite_file"`
}

type Publish struct {
	RedisURL string `toml:"redis_url"`
	Stream   string `toml:"stream"`
}

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Debug bool   `toml:"debug_mode"`
}

type Log struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

type Config struct {
	Rating      Rating      `toml:"rating"`
	Performance Performance `toml:"performance"`
	TeamLadder  TeamLadder  `toml:"team_ladder"`
	Aggregate   Aggregate   `toml:"aggregate"`
	Input       Input       `toml:"input"`
	Output      Output      `toml:"output"`
	Storage     Storage     `toml:"storage"`
	Publish     Publish     `toml:"publish"`
	Server      Server      `toml:"server"`
	Log         Log         `toml:"log"`
}

func Default() Config {
	return Config{
		Rating: Rating{
			BaseRating:        1500,
			K:                 30,
			KMode:             KModeFixed,
			DynamicKSmoothing: 5,
			EloScale:          400,
			GradeOffsetStep:   25,
		},
		Performance: Performance{
			Formula:     FormulaPoints,
			FoulPenalty: 0.1,
			WinBonusPct: 0.15,
			MinPerf:     0.01,
		},
		TeamLadder: TeamLadder{
			Mode:       LadderElo,
			BaseRating: 1500,
			K:          20,
			EloScale:   400,
		},
		Aggregate: Aggregate{
			TopK: 5,
		},
		Input: Input{
			GamesFile: "data/full_season.csv",
			LinesFile: "data/player_stats.csv",
		},
		Output: Output{
			Dir: "data",
		},
		Publish: Publish{
			Stream: "ratings.updates",
		},
		Server: Server{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// New reads the TOML file at path over the defaults and validates the result.
func New(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if url := os.Getenv("COURTRATING_REDIS_URL"); url != "" {
		cfg.Publish.RedisURL = url
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid parameter at once.
func (c Config) Validate() error {
	var err error
	r := c.Rating
	if !finite(r.BaseRating) {
		err = errors.Join(err, fmt.Errorf("rating.base_rating must be finite, got %v", r.BaseRating))
	}
	if !(r.K > 0) || !finite(r.K) {
		err = errors.Join(err, fmt.Errorf("rating.k must be positive, got %v", r.K))
	}
	if !(r.EloScale > 0) || !finite(r.EloScale) {
		err = errors.Join(err, fmt.Errorf("rating.elo_scale must be positive, got %v", r.EloScale))
	}
	if r.GradeOffsetStep < 0 || !finite(r.GradeOffsetStep) {
		err = errors.Join(err, fmt.Errorf("rating.grade_offset_step must not be negative, got %v", r.GradeOffsetStep))
	}
	switch r.KMode {
	case KModeFixed:
	case KModeDynamic:
		if !(r.DynamicKSmoothing > 0) || !finite(r.DynamicKSmoothing) {
			err = errors.Join(err, fmt.Errorf("rating.dynamic_k_smoothing must be positive with k_mode %q, got %v", KModeDynamic, r.DynamicKSmoothing))
		}
	default:
		err = errors.Join(err, fmt.Errorf("rating.k_mode must be %q or %q, got %q", KModeFixed, KModeDynamic, r.KMode))
	}

	p := c.Performance
	switch p.Formula {
	case FormulaPoints, FormulaWeightedMakes:
	default:
		err = errors.Join(err, fmt.Errorf("performance.formula must be %q or %q, got %q", FormulaPoints, FormulaWeightedMakes, p.Formula))
	}
	if p.FoulPenalty < 0 || !finite(p.FoulPenalty) {
		err = errors.Join(err, fmt.Errorf("performance.foul_penalty must not be negative, got %v", p.FoulPenalty))
	}
	if p.WinBonusPct < 0 || !finite(p.WinBonusPct) {
		err = errors.Join(err, fmt.Errorf("performance.win_bonus_pct must not be negative, got %v", p.WinBonusPct))
	}
	if !(p.MinPerf > 0) || !finite(p.MinPerf) {
		err = errors.Join(err, fmt.Errorf("performance.min_perf must be positive, got %v", p.MinPerf))
	}

	l := c.TeamLadder
	switch l.Mode {
	case LadderNone, LadderGlicko2:
	case LadderElo:
		if !(l.K > 0) || !finite(l.K) {
			err = errors.Join(err, fmt.Errorf("team_ladder.k must be positive, got %v", l.K))
		}
		if !(l.EloScale > 0) || !finite(l.EloScale) {
			err = errors.Join(err, fmt.Errorf("team_ladder.elo_scale must be positive, got %v", l.EloScale))
		}
	default:
		err = errors.Join(err, fmt.Errorf("team_ladder.mode must be one of %q, %q, %q, got %q", LadderNone, LadderElo, LadderGlicko2, l.Mode))
	}
	if !finite(l.BaseRating) {
		err = errors.Join(err, fmt.Errorf("team_ladder.base_rating must be finite, got %v", l.BaseRating))
	}

	if c.Aggregate.TopK < 0 {
		err = errors.Join(err, fmt.Errorf("aggregate.top_k must not be negative, got %d", c.Aggregate.TopK))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		err = errors.Join(err, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
