package game

import (
	"nofs/internal/card"
	"nofs/internal/condition"
	"nofs/internal/task"
)

// stressHighAt is the stress level where every task costs +1 of each
// kind and the hand shrinks by two.
const stressHighAt = 5

// ModifiedCost computes a task's effective cost from its base cost, the
// active conditions, the stress/burnout state, and this turn's cost
// reductions. It is recomputed fresh on every call.
//
// Condition penalties are gated on the base cost containing the
// relevant kind, so a condition never turns a zero requirement positive
// and never cascades off another condition's addition.
func (g *Game) ModifiedCost(t task.Task) task.Cost {
	base := t.Cost
	cost := t.Cost

	if g.conditions.Has(condition.Depression) && base.Physical > 0 {
		cost.Physical++
	}
	if g.conditions.Has(condition.Anxiety) && base.Social > 0 {
		cost.Social++
	}
	if g.conditions.Has(condition.ExecDys) && !g.flags.firstTaskAttempted {
		if base.Physical > 0 {
			cost.Physical++
		} else {
			cost.Mental++
		}
	}
	if g.conditions.Has(condition.Dyslexia) && base.Mental > 0 {
		cost.Mental++
	}
	if g.conditions.Has(condition.ASD) && base.Social > 0 {
		cost.Social++
		cost.Mental++
	}

	// The global stress penalty ignores the base-cost gate.
	if g.stress >= stressHighAt || g.burntOut {
		cost.Physical++
		cost.Social++
		cost.Mental++
	}

	for _, k := range card.Kinds() {
		cost.Set(k, max(0, cost.Get(k)-g.turnCostReduction.Get(k)))
	}
	return cost
}
