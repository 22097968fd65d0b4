package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goserg/courtrating/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	KindGameUpdate = "game_update"
	KindRunSummary = "run_summary"
)

// pipelineChunk bounds the number of XADD commands per round trip.
const pipelineChunk = 256

// RedisStreamPublisher appends the updates of a finished run to a Redis stream.
type RedisStreamPublisher struct {
	client *redis.Client
	stream string
	log    *logrus.Entry
}

func NewRedisStreamPublisher(client *redis.Client, stream string, l *logrus.Logger) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
		stream: stream,
		log:    l.WithField("from", "publisher"),
	}
}

// Dial connects to the Redis server at redisURL.
func Dial(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(fmt.Errorf("ping redis: %w", err), client.Close())
	}
	return client, nil
}

func (p *RedisStreamPublisher) Close() error {
	return p.client.Close()
}

type updateMessage struct {
	RunID        string               `json:"run_id"`
	Seq          int                  `json:"seq"`
	Grade        string               `json:"grade"`
	Round        string               `json:"round"`
	Date         string               `json:"date"`
	HomeTeamID   string               `json:"home_team_id"`
	AwayTeamID   string               `json:"away_team_id"`
	WinnerTeamID string               `json:"winner_team_id,omitempty"`
	Participants []participantMessage `json:"participants"`
}

type participantMessage struct {
	PlayerID      string  `json:"player_id"`
	TeamID        string  `json:"team_id"`
	Performance   float64 `json:"performance"`
	ActualShare   float64 `json:"actual_share"`
	ExpectedShare float64 `json:"expected_share"`
	K             float64 `json:"k"`
	RatingBefore  float64 `json:"rating_before"`
	RatingAfter   float64 `json:"rating_after"`
	Delta         float64 `json:"delta"`
}

type summaryMessage struct {
	RunID     string           `json:"run_id"`
	CreatedAt time.Time        `json:"created_at"`
	Report    domain.RunReport `json:"report"`
	TopPlayer string           `json:"top_player,omitempty"`
	TopTeam   string           `json:"top_team,omitempty"`
}

func encodeUpdate(runID string, u domain.GameUpdate) ([]byte, error) {
	msg := updateMessage{
		RunID:        runID,
		Seq:          u.Seq,
		Grade:        u.Grade,
		Round:        u.Round,
		Date:         domain.DateKey(u.Date),
		HomeTeamID:   u.HomeTeamID,
		AwayTeamID:   u.AwayTeamID,
		WinnerTeamID: u.WinnerTeamID,
		Participants: make([]participantMessage, 0, len(u.Participants)),
	}
	for _, pt := range u.Participants {
		msg.Participants = append(msg.Participants, participantMessage{
			PlayerID:      pt.PlayerID,
			TeamID:        pt.TeamID,
			Performance:   pt.Performance,
			ActualShare:   pt.ActualShare,
			ExpectedShare: pt.ExpectedShare,
			K:             pt.K,
			RatingBefore:  pt.RatingBefore,
			RatingAfter:   pt.RatingAfter,
			Delta:         pt.Delta(),
		})
	}
	return json.Marshal(msg)
}

func encodeSummary(snapshot domain.Snapshot) ([]byte, error) {
	msg := summaryMessage{
		RunID:     snapshot.RunID.String(),
		CreatedAt: snapshot.CreatedAt,
		Report:    snapshot.Report,
	}
	if len(snapshot.Players) > 0 {
		msg.TopPlayer = snapshot.Players[0].PlayerID
	}
	if len(snapshot.Teams) > 0 {
		msg.TopTeam = snapshot.Teams[0].TeamID
	}
	return json.Marshal(msg)
}

// Publish appends every game update in order followed by one run summary.
func (p *RedisStreamPublisher) Publish(ctx context.Context, snapshot domain.Snapshot, updates []domain.GameUpdate) error {
	runID := snapshot.RunID.String()
	for start := 0; start < len(updates); start += pipelineChunk {
		end := start + pipelineChunk
		if end > len(updates) {
			end = len(updates)
		}
		_, err := p.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, u := range updates[start:end] {
				data, err := encodeUpdate(runID, u)
				if err != nil {
					return err
				}
				pipe.XAdd(ctx, p.args(KindGameUpdate, data))
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("publish updates: %w", err)
		}
	}

	data, err := encodeSummary(snapshot)
	if err != nil {
		return err
	}
	if err := p.client.XAdd(ctx, p.args(KindRunSummary, data)).Err(); err != nil {
		return fmt.Errorf("publish summary: %w", err)
	}
	p.log.WithFields(logrus.Fields{
		"stream":  p.stream,
		"run":     runID,
		"updates": len(updates),
	}).Info("run published")
	return nil
}

func (p *RedisStreamPublisher) args(kind string, data []byte) *redis.XAddArgs {
	return &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"kind":      kind,
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}
}
