// Package ai contains the deterministic strategies that play the engine
// headlessly. A strategy is a pure function of the game's read surface:
// identical states produce identical moves.
package ai

import (
	"fmt"
	"sort"

	"nofs/internal/card"
	"nofs/internal/game"
)

type Action string

const (
	ActionAttemptTask         Action = "attemptTask"
	ActionDiscardToDraw       Action = "discardToDraw"
	ActionSpendToRemoveStress Action = "spendToRemoveStress"
	ActionEndTurn             Action = "endTurn"
)

// Move is one action descriptor: what to do, against which task, with
// which hand cards.
type Move struct {
	Action      Action `json:"action"`
	TaskIndex   int    `json:"task_index,omitempty"`
	CardIndices []int  `json:"card_indices,omitempty"`
}

// Strategy inspects the state and emits exactly one move.
type Strategy func(g *game.Game) Move

var strategies = map[string]Strategy{
	"aggressive":   Aggressive,
	"conservative": Conservative,
	"balanced":     Balanced,
	"optimal":      Balanced, // optimal is the balanced policy for now
}

// ByName looks up a named strategy.
func ByName(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %q", name)
	}
	return s, nil
}

// Names lists the available strategies in stable order.
func Names() []string {
	var out []string
	for n := range strategies {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Apply replays a move against the engine's action surface. Any
// leftover selection is cleared first so the move's card and task
// choices are applied from a clean slate.
func Apply(g *game.Game, m Move) {
	g.ClearSelections()
	switch m.Action {
	case ActionAttemptTask:
		for _, i := range m.CardIndices {
			g.SelectCard(i)
		}
		g.SelectTask(m.TaskIndex)
		g.AttemptTask()
	case ActionDiscardToDraw:
		for _, i := range m.CardIndices {
			g.SelectCard(i)
		}
		g.DiscardToDraw()
	case ActionSpendToRemoveStress:
		for _, i := range m.CardIndices {
			g.SelectCard(i)
		}
		g.SpendToRemoveStress()
	case ActionEndTurn:
		g.EndTurn()
	}
}

// handResources counts the hand per kind and records each kind's
// indices in hand order.
func handResources(hand []card.Card) (counts map[card.Kind]int, indices map[card.Kind][]int) {
	counts = map[card.Kind]int{}
	indices = map[card.Kind][]int{}
	for i, c := range hand {
		counts[c.Kind]++
		indices[c.Kind] = append(indices[c.Kind], i)
	}
	return counts, indices
}

// handSkewed reports a lopsided hand: three or more cards with one kind
// holding more than 60% of them.
func handSkewed(hand []card.Card) bool {
	if len(hand) < 3 {
		return false
	}
	counts, _ := handResources(hand)
	maxCount := 0
	for _, n := range counts {
		maxCount = max(maxCount, n)
	}
	return float64(maxCount)/float64(len(hand)) > 0.6
}
