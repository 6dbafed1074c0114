package game

import (
	"fmt"

	"nofs/internal/condition"
)

// addStress is the single chokepoint for incoming stress. The shield
// absorbs first; hitting the cap ends the run in life mode and flips
// the sticky burnout flag everywhere else.
func (g *Game) addStress(amount int) {
	if g.burntOut {
		return
	}

	if g.stressShield > 0 {
		prevented := min(g.stressShield, amount)
		g.stressShield -= prevented
		amount -= prevented
		g.message += fmt.Sprintf(" (Prevented %d Stress!)", prevented)
	}

	g.stress = min(maxStress, g.stress+amount)

	if g.stress >= maxStress {
		if g.mode == ModeLife {
			g.endGame()
			return
		}
		g.burntOut = true
		g.stress = maxStress
		g.message += " You are Burnt Out! All tasks cost more and positive effects fizzle."
	}
}

// handSize is how many cards the next turn deals.
func (g *Game) handSize() int {
	n := baseHandSize
	if g.conditions.Has(condition.ADHD) {
		n++
	}
	if g.stress >= 3 && g.stress <= 4 {
		n--
	}
	if g.stress >= stressHighAt || g.burntOut {
		n -= 2
	}
	return max(1, n)
}
