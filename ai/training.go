package ai

import (
	"context"

	"color-snake/game"
	"color-snake/game/rng"
	"color-snake/game/types"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type TrainConfig struct {
	Grid     types.Grid
	Seed     uint64
	Episodes int
	MaxTicks int // per episode; stops snakes that circle forever
}

type TrainReport struct {
	Episodes int
	Best     int64
	Average  float64
}

// Train plays headless episodes with the agent in q and returns score
// statistics. It stops early, returning what it has, when ctx is done.
func Train(ctx context.Context, cfg TrainConfig, q *QLearning, logger zerolog.Logger) (TrainReport, error) {
	var report TrainReport
	if cfg.Episodes <= 0 {
		return report, errors.Errorf("episodes must be positive, got %d", cfg.Episodes)
	}
	if cfg.MaxTicks <= 0 {
		cfg.MaxTicks = 10 * cfg.Grid.Area()
	}

	g := game.NewGame(cfg.Grid, rng.New(cfg.Seed), logger.Level(zerolog.WarnLevel))
	var total int64

	for episode := 0; episode < cfg.Episodes; episode++ {
		if episode > 0 {
			g.Reset()
		}
		pilot := NewPilot(q)

		res := game.TickResult{}
		for tick := 0; tick < cfg.MaxTicks; tick++ {
			if err := ctx.Err(); err != nil {
				return finish(report, total), errors.Wrap(err, "training interrupted")
			}
			if pilot.Step(g, res) == types.None {
				break
			}
			res = g.Tick()
		}

		score := g.Score()
		total += score
		if score > report.Best {
			report.Best = score
		}
		report.Episodes++

		if (episode+1)%100 == 0 {
			logger.Info().
				Int("episode", episode+1).
				Int64("best", report.Best).
				Float64("average", float64(total)/float64(report.Episodes)).
				Int("states", len(q.QTable)).
				Msg("training progress")
		}
	}

	return finish(report, total), nil
}

func finish(report TrainReport, total int64) TrainReport {
	if report.Episodes > 0 {
		report.Average = float64(total) / float64(report.Episodes)
	}
	return report
}
