// Package sim drives the engine headlessly: one strategy, many games,
// aggregate outcomes.
package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"nofs/internal/ai"
	"nofs/internal/condition"
	"nofs/internal/game"
)

type Config struct {
	Strategy   string
	Mode       game.Mode
	Conditions condition.Set
	Games      int
	Seed       int64

	// MaxDays stops a life-mode game that refuses to burn out.
	MaxDays int

	Log zerolog.Logger
}

type Result struct {
	Strategy     string         `json:"strategy"`
	Games        int            `json:"games"`
	Burnouts     int            `json:"burnouts"`
	AvgCompleted float64        `json:"avg_completed"`
	AvgDays      float64        `json:"avg_days"`
	Grades       map[string]int `json:"grades"`
	Survived     int            `json:"survived"` // life games that hit MaxDays
}

const defaultMaxDays = 365

// Run plays cfg.Games full games and aggregates what happened. Seeds
// are derived per game so a run is reproducible end to end. Cancelling
// ctx aborts the batch, mid-game included.
func Run(ctx context.Context, cfg Config) (Result, error) {
	strategy, err := ai.ByName(cfg.Strategy)
	if err != nil {
		return Result{}, err
	}
	if cfg.Games <= 0 {
		cfg.Games = 1
	}
	if cfg.MaxDays <= 0 {
		cfg.MaxDays = defaultMaxDays
	}

	res := Result{Strategy: cfg.Strategy, Games: cfg.Games, Grades: map[string]int{}}
	totalCompleted := 0
	totalDays := 0

	for i := 0; i < cfg.Games; i++ {
		rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
		g, err := game.New(cfg.Mode, cfg.Conditions, game.WithRand(rng))
		if err != nil {
			return Result{}, fmt.Errorf("game %d: %w", i, err)
		}

		survived, err := playOut(ctx, g, strategy, cfg.MaxDays)
		if err != nil {
			return Result{}, err
		}

		completed := len(g.CompletedTasks())
		totalCompleted += completed
		totalDays += g.Day()
		if g.BurntOut() || (g.GameOver() && g.Stress() >= 7) {
			res.Burnouts++
		}
		if survived {
			res.Survived++
		}
		if grade := g.Grade(); grade != "" {
			res.Grades[grade]++
		}

		cfg.Log.Debug().
			Int("game", i).
			Int("completed", completed).
			Int("days", g.Day()).
			Bool("burnt_out", g.BurntOut()).
			Str("grade", g.Grade()).
			Msg("game finished")
	}

	res.AvgCompleted = float64(totalCompleted) / float64(cfg.Games)
	res.AvgDays = float64(totalDays) / float64(cfg.Games)
	return res, nil
}

// playOut loops strategy moves into the engine until the game ends, the
// day cap is hit, or ctx is cancelled. A move that changes nothing
// forces an end-turn so the loop always makes progress.
func playOut(ctx context.Context, g *game.Game, strategy ai.Strategy, maxDays int) (survivedCap bool, err error) {
	for !g.GameOver() {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if g.Day() > maxDays {
			return true, nil
		}
		before := progressKey(g)
		ai.Apply(g, strategy(g))
		if !g.GameOver() && progressKey(g) == before {
			g.EndTurn()
		}
	}
	return false, nil
}

func progressKey(g *game.Game) string {
	return fmt.Sprintf("%d/%d/%d/%d/%d/%v/%v",
		g.Day(), g.Turn(), g.Stress(), len(g.Hand()), len(g.CompletedTasks()),
		g.DiscardToDrawUsed(), len(g.CurrentTasks()))
}
