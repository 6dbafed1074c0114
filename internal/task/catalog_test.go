package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nofs/internal/card"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	require.Len(t, c.Tasks, 30)

	assert.Equal(t, 7, c.CountFor(Morning))
	assert.Equal(t, 8, c.CountFor(Midday))
	assert.Equal(t, 8, c.CountFor(Afternoon))
	assert.Equal(t, 7, c.CountFor(Evening))
}

func TestDefaultCatalog_KnownEntries(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	byName := map[string]Task{}
	for _, tk := range c.Tasks {
		byName[tk.Name] = tk
	}

	shower, ok := byName["SHOWER"]
	require.True(t, ok)
	assert.Equal(t, Cost{Physical: 1}, shower.Cost)
	assert.Equal(t, Morning, shower.Time)
	require.NotNil(t, shower.Effect)
	assert.Equal(t, EffectRemoveStress, shower.Effect.Code)
	assert.Equal(t, 1, shower.Effect.Value)

	reflect, ok := byName["REFLECT ON DAY"]
	require.True(t, ok)
	require.NotNil(t, reflect.Effect)
	assert.Equal(t, EffectResetAction, reflect.Effect.Code)
	assert.Equal(t, FlagDiscardToDraw, reflect.Effect.Flag)
}

func TestParseCatalog_Rejections(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty", "tasks: []"},
		{"missing name", "tasks:\n  - time: Morning\n"},
		{"bad timeslot", "tasks:\n  - name: X\n    time: Dusk\n"},
		{"negative cost", "tasks:\n  - name: X\n    time: Morning\n    cost: {physical: -1}\n"},
		{"bad effect code", "tasks:\n  - name: X\n    time: Morning\n    effect: {code: teleport}\n"},
		{"draw without value", "tasks:\n  - name: X\n    time: Morning\n    effect: {code: draw}\n"},
		{"draw_kind without card", "tasks:\n  - name: X\n    time: Morning\n    effect: {code: draw_kind, value: 1}\n"},
		{"reset_action bad flag", "tasks:\n  - name: X\n    time: Morning\n    effect: {code: reset_action, flag: nope}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestByTimeslot_ReturnsCopies(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	morning := c.ByTimeslot(Morning)
	require.NotEmpty(t, morning)
	original := morning[0].Name
	morning[0].Name = "MUTATED"

	again := c.ByTimeslot(Morning)
	assert.Equal(t, original, again[0].Name)
}

func TestEffect_FizzlesWhenBurntOut(t *testing.T) {
	fizzles := []EffectCode{EffectDraw, EffectDrawKind, EffectRemoveStress, EffectRemoveAllStress, EffectPreventStress}
	for _, code := range fizzles {
		assert.True(t, Effect{Code: code}.FizzlesWhenBurntOut(), "%s", code)
	}
	persists := []EffectCode{EffectReduceCostTurn, EffectResetAction}
	for _, code := range persists {
		assert.False(t, Effect{Code: code}.FizzlesWhenBurntOut(), "%s", code)
	}
}

func TestTimeslotForTurn(t *testing.T) {
	assert.Equal(t, Morning, TimeslotForTurn(1))
	assert.Equal(t, Evening, TimeslotForTurn(4))
	assert.Equal(t, Timeslot(""), TimeslotForTurn(0))
	assert.Equal(t, Timeslot(""), TimeslotForTurn(5))
}

func TestCost_Accessors(t *testing.T) {
	c := Cost{Physical: 2, Social: 1}
	assert.Equal(t, 2, c.Get(card.Physical))
	assert.Equal(t, 1, c.Get(card.Social))
	assert.Equal(t, 0, c.Get(card.Mental))
	assert.Equal(t, 3, c.Total())
	assert.Equal(t, "2P/1S/0M", c.String())

	c.Set(card.Mental, 4)
	assert.Equal(t, 4, c.Mental)
}
