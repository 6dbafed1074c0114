package sim

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nofs/internal/condition"
	"nofs/internal/game"
)

func TestRun_UnknownStrategy(t *testing.T) {
	_, err := Run(context.Background(), Config{Strategy: "yolo", Mode: game.ModeDay, Log: zerolog.Nop()})
	assert.Error(t, err)
}

func TestRun_WeekBatch(t *testing.T) {
	res, err := Run(context.Background(), Config{
		Strategy: "balanced",
		Mode:     game.ModeWeek,
		Games:    5,
		Seed:     1,
		Log:      zerolog.Nop(),
	})
	require.NoError(t, err)

	assert.Equal(t, "balanced", res.Strategy)
	assert.Equal(t, 5, res.Games)
	assert.GreaterOrEqual(t, res.AvgCompleted, 0.0)
	assert.LessOrEqual(t, res.AvgDays, 8.0, "a week run never gets past day 8")

	// Every finite game either burns out or gets graded, never both.
	graded := 0
	for _, n := range res.Grades {
		graded += n
	}
	assert.Equal(t, 5, graded+res.Burnouts)
}

func TestRun_Reproducible(t *testing.T) {
	cfg := Config{
		Strategy:   "conservative",
		Mode:       game.ModeWeek,
		Conditions: condition.NewSet(condition.ADHD),
		Games:      3,
		Seed:       42,
		Log:        zerolog.Nop(),
	}
	a, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	b, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_LifeModeRespectsDayCap(t *testing.T) {
	res, err := Run(context.Background(), Config{
		Strategy: "aggressive",
		Mode:     game.ModeLife,
		Games:    3,
		Seed:     7,
		MaxDays:  10,
		Log:      zerolog.Nop(),
	})
	require.NoError(t, err)

	// A life game either hits the stress cap or survives to the day cap.
	assert.Equal(t, 3, res.Survived+res.Burnouts)
	assert.Empty(t, res.Grades, "life mode is never graded")
}

func TestRun_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{
		Strategy: "balanced",
		Mode:     game.ModeLife,
		Games:    100,
		Seed:     1,
		Log:      zerolog.Nop(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_DefaultsGamesToOne(t *testing.T) {
	res, err := Run(context.Background(), Config{Strategy: "balanced", Mode: game.ModeDay, Seed: 3, Log: zerolog.Nop()})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Games)
}
