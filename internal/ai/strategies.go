package ai

import (
	"math"

	"nofs/internal/card"
	"nofs/internal/condition"
	"nofs/internal/game"
)

type preference int

const (
	prefAny preference = iota
	prefCheapest
	prefHardest
)

// findAffordableTask searches the task row for a task payable from the
// hand, honoring a preference and an optional set of protected hand
// indices that must not be spent. Returns nil when nothing is
// affordable.
func findAffordableTask(g *game.Game, pref preference, exclude []int) *Move {
	hand := g.Hand()
	excluded := map[int]bool{}
	for _, i := range exclude {
		excluded[i] = true
	}

	var virtualHand []card.Card
	var realIndices []int
	for i, c := range hand {
		if excluded[i] {
			continue
		}
		virtualHand = append(virtualHand, c)
		realIndices = append(realIndices, i)
	}
	counts, indices := handResources(virtualHand)

	var best *Move
	bestCost := -1
	if pref == prefCheapest {
		bestCost = math.MaxInt
	}

	for ti, t := range g.CurrentTasks() {
		cost := g.ModifiedCost(t)
		if counts[card.Physical] < cost.Physical ||
			counts[card.Social] < cost.Social ||
			counts[card.Mental] < cost.Mental {
			continue
		}

		total := cost.Total()
		better := false
		switch pref {
		case prefAny:
			better = true
		case prefCheapest:
			better = total < bestCost
		case prefHardest:
			better = total > bestCost
		}
		if !better {
			continue
		}

		var virtualPicks []int
		virtualPicks = append(virtualPicks, indices[card.Physical][:cost.Physical]...)
		virtualPicks = append(virtualPicks, indices[card.Social][:cost.Social]...)
		virtualPicks = append(virtualPicks, indices[card.Mental][:cost.Mental]...)

		cardIndices := make([]int, len(virtualPicks))
		for i, vi := range virtualPicks {
			cardIndices[i] = realIndices[vi]
		}

		best = &Move{Action: ActionAttemptTask, TaskIndex: ti, CardIndices: cardIndices}
		bestCost = total
		if pref == prefAny {
			return best
		}
	}
	return best
}

// protectedSocial returns the first social card's index when ADHD is
// active, so a strategy can hold it back for social costs. -1 when
// nothing is protected.
func protectedSocial(g *game.Game) int {
	if !g.Conditions().Has(condition.ADHD) {
		return -1
	}
	for i, c := range g.Hand() {
		if c.Kind == card.Social {
			return i
		}
	}
	return -1
}

// Aggressive rushes: complete anything affordable, otherwise churn the
// hand, otherwise end the turn.
func Aggressive(g *game.Game) Move {
	if m := findAffordableTask(g, prefAny, nil); m != nil {
		return *m
	}
	if !g.DiscardToDrawUsed() && len(g.Hand()) >= 2 {
		return Move{Action: ActionDiscardToDraw, CardIndices: []int{0, 1}}
	}
	return Move{Action: ActionEndTurn}
}

// Conservative manages stress first, then completes the cheapest
// affordable task, protecting one social card under ADHD.
func Conservative(g *game.Game) Move {
	const stressCost = 3
	if g.Stress() > 2 && len(g.Hand()) >= stressCost {
		return Move{Action: ActionSpendToRemoveStress, CardIndices: []int{0, 1, 2}}
	}

	var exclude []int
	if i := protectedSocial(g); i >= 0 {
		exclude = append(exclude, i)
	}
	if m := findAffordableTask(g, prefCheapest, exclude); m != nil {
		return *m
	}
	return Move{Action: ActionEndTurn}
}

// Balanced gambles: fix a skewed hand, go for the hardest affordable
// task, fall back to any task, then relieve stress when it runs high.
func Balanced(g *game.Game) Move {
	hand := g.Hand()

	socialIndex := protectedSocial(g)
	var exclude []int
	if socialIndex >= 0 {
		exclude = append(exclude, socialIndex)
	}

	var virtualHand []card.Card
	for i, c := range hand {
		if i != socialIndex {
			virtualHand = append(virtualHand, c)
		}
	}
	if !g.DiscardToDrawUsed() && len(virtualHand) >= 2 && handSkewed(virtualHand) {
		var discards []int
		for i := range hand {
			if i != socialIndex {
				discards = append(discards, i)
			}
			if len(discards) == 2 {
				break
			}
		}
		if len(discards) == 2 {
			return Move{Action: ActionDiscardToDraw, CardIndices: discards}
		}
	}

	if m := findAffordableTask(g, prefHardest, exclude); m != nil {
		return *m
	}
	if m := findAffordableTask(g, prefAny, exclude); m != nil {
		return *m
	}

	const stressCost = 3
	if g.Stress() > 5 && len(hand) >= stressCost {
		var spend []int
		for i := range hand {
			if i != socialIndex {
				spend = append(spend, i)
			}
		}
		if len(spend) >= stressCost {
			return Move{Action: ActionSpendToRemoveStress, CardIndices: spend[:stressCost]}
		}
	}

	return Move{Action: ActionEndTurn}
}
