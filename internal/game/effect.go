package game

import "nofs/internal/task"

// applyEffect resolves a completed task's reward against current state.
// While burnt out, draws and stress relief fizzle; cost reductions and
// action resets still land.
func (g *Game) applyEffect(e task.Effect) {
	if g.burntOut && e.FizzlesWhenBurntOut() {
		g.message += " (Burnt Out: effect fizzled.)"
		return
	}

	if e.Text != "" {
		g.message += " (" + e.Text + ")"
	}

	switch e.Code {
	case task.EffectDraw:
		g.hand = append(g.hand, g.resources.Draw(e.Value)...)
	case task.EffectDrawKind:
		g.hand = append(g.hand, g.resources.DrawKind(e.Card, e.Value)...)
	case task.EffectRemoveStress:
		// Direct reduction: no shield involved.
		g.stress = max(0, g.stress-e.Value)
	case task.EffectRemoveAllStress:
		g.stress = 0
	case task.EffectPreventStress:
		g.stressShield += e.Value
	case task.EffectReduceCostTurn:
		g.turnCostReduction.Set(e.Card, g.turnCostReduction.Get(e.Card)+e.Value)
	case task.EffectResetAction:
		if e.Flag == task.FlagDiscardToDraw {
			g.flags.discardToDrawUsed = false
		}
	}
}
