package task

import (
	"fmt"

	"nofs/internal/card"
)

// EffectCode tags the reward variant a completed task grants.
type EffectCode string

const (
	EffectDraw            EffectCode = "draw"
	EffectDrawKind        EffectCode = "draw_kind"
	EffectRemoveStress    EffectCode = "remove_stress"
	EffectRemoveAllStress EffectCode = "remove_all_stress"
	EffectPreventStress   EffectCode = "prevent_stress"
	EffectReduceCostTurn  EffectCode = "reduce_cost_turn"
	EffectResetAction     EffectCode = "reset_action"
)

// FlagDiscardToDraw is the only once-per-turn flag an EffectResetAction
// may clear.
const FlagDiscardToDraw = "discard_to_draw"

// Effect is a closed tagged variant. Value carries the magnitude for
// draw/stress/reduction codes, Card the kind for draw_kind and
// reduce_cost_turn, Flag the target for reset_action.
type Effect struct {
	Code  EffectCode `yaml:"code" json:"code"`
	Value int        `yaml:"value,omitempty" json:"value,omitempty"`
	Card  card.Kind  `yaml:"card,omitempty" json:"card,omitempty"`
	Flag  string     `yaml:"flag,omitempty" json:"flag,omitempty"`
	Text  string     `yaml:"text,omitempty" json:"text,omitempty"`
}

// FizzlesWhenBurntOut reports whether burnout suppresses this reward.
// Cost reductions and action resets deliberately keep working while
// burnt out; draws and stress relief do not.
func (e Effect) FizzlesWhenBurntOut() bool {
	switch e.Code {
	case EffectDraw, EffectDrawKind, EffectRemoveStress, EffectRemoveAllStress, EffectPreventStress:
		return true
	}
	return false
}

// Validate checks the variant's fields for catalog loading.
func (e Effect) Validate() error {
	switch e.Code {
	case EffectDraw:
		if e.Value <= 0 {
			return fmt.Errorf("draw effect needs a positive value")
		}
	case EffectDrawKind, EffectReduceCostTurn:
		if e.Value <= 0 {
			return fmt.Errorf("%s effect needs a positive value", e.Code)
		}
		if _, err := card.ParseKind(string(e.Card)); err != nil {
			return fmt.Errorf("%s effect: %w", e.Code, err)
		}
	case EffectRemoveStress, EffectPreventStress:
		if e.Value <= 0 {
			return fmt.Errorf("%s effect needs a positive value", e.Code)
		}
	case EffectRemoveAllStress:
	case EffectResetAction:
		if e.Flag != FlagDiscardToDraw {
			return fmt.Errorf("reset_action effect: unknown flag %q", e.Flag)
		}
	default:
		return fmt.Errorf("unknown effect code: %q", e.Code)
	}
	return nil
}
