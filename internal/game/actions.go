package game

import (
	"fmt"
	"sort"

	"nofs/internal/card"
	"nofs/internal/condition"
	"nofs/internal/task"
)

// reject records an advisory message and leaves all state unchanged.
func (g *Game) reject(format string, args ...any) {
	g.message = fmt.Sprintf(format, args...)
}

// rejectIfOver guards every mutating action once the run is terminal.
func (g *Game) rejectIfOver() bool {
	if g.gameOver {
		g.message = "The game is over."
		return true
	}
	return false
}

// SelectCard toggles a hand card in or out of the selection.
func (g *Game) SelectCard(index int) {
	if g.rejectIfOver() {
		return
	}
	if index < 0 || index >= len(g.hand) {
		g.reject("No card at position %d.", index)
		return
	}
	if g.selectedCards[index] {
		delete(g.selectedCards, index)
	} else {
		g.selectedCards[index] = true
	}
}

// SelectTask toggles the task selection.
func (g *Game) SelectTask(index int) {
	if g.rejectIfOver() {
		return
	}
	if index < 0 || index >= len(g.currentTasks) {
		g.reject("No task at position %d.", index)
		return
	}
	if g.selectedTask == index {
		g.selectedTask = -1
	} else {
		g.selectedTask = index
	}
}

// discardSelected moves every selected card from the hand to the
// resource discard, highest index first so earlier removals don't shift
// later ones.
func (g *Game) discardSelected() {
	var idxs []int
	for i := range g.selectedCards {
		idxs = append(idxs, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
	for _, i := range idxs {
		g.resources.Discard(g.hand[i])
		g.hand = append(g.hand[:i], g.hand[i+1:]...)
	}
	g.selectedCards = map[int]bool{}
}

func (g *Game) selectedKindCounts() map[card.Kind]int {
	counts := map[card.Kind]int{}
	for i := range g.selectedCards {
		counts[g.hand[i].Kind]++
	}
	return counts
}

// AttemptTask pays the selected cards against the selected task's
// modified cost. Surplus selected cards of a satisfied kind are allowed
// and still discarded.
func (g *Game) AttemptTask() {
	if g.rejectIfOver() {
		return
	}
	if g.selectedTask < 0 {
		g.reject("Select a task first.")
		return
	}
	if len(g.selectedCards) == 0 {
		g.reject("Select F-cards to play.")
		return
	}

	t := g.currentTasks[g.selectedTask]
	cost := g.ModifiedCost(t)
	played := g.selectedKindCounts()
	for _, k := range card.Kinds() {
		if played[k] < cost.Get(k) {
			g.reject("Wrong cards! Check the task requirements.")
			return
		}
	}

	g.flags.firstTaskAttempted = true
	g.currentDeck().Discard(t)
	g.completedTasks = append(g.completedTasks, t.Name)
	g.currentTasks = append(g.currentTasks[:g.selectedTask], g.currentTasks[g.selectedTask+1:]...)
	g.discardSelected()
	g.selectedTask = -1
	g.message = fmt.Sprintf("Completed: %s", t.Name)

	if t.Effect != nil {
		g.applyEffect(*t.Effect)
	}
}

// SkipTask discards the selected task unresolved for a flat 2 stress.
// Skipping still consumes the first-task gate.
func (g *Game) SkipTask() {
	if g.rejectIfOver() {
		return
	}
	if g.selectedTask < 0 {
		g.reject("Select a task to skip.")
		return
	}

	g.flags.firstTaskAttempted = true
	t := g.currentTasks[g.selectedTask]
	g.currentTasks = append(g.currentTasks[:g.selectedTask], g.currentTasks[g.selectedTask+1:]...)
	g.currentDeck().Discard(t)
	g.selectedTask = -1

	g.message = fmt.Sprintf("Skipped: %s", t.Name)
	g.addStress(skipStress)
	if !g.gameOver {
		g.message += fmt.Sprintf(" (+%d Stress)", skipStress)
	}
}

// UseHyperfocus completes the selected task without cost checking by
// discarding the first three cards in hand order. Card selection is
// ignored. ADHD only, once per turn.
func (g *Game) UseHyperfocus() {
	if g.rejectIfOver() {
		return
	}
	if !g.conditions.Has(condition.ADHD) {
		g.reject("Hyperfocus requires ADHD.")
		return
	}
	if g.flags.hyperfocusUsed {
		g.reject("Hyperfocus already used this turn.")
		return
	}
	if g.selectedTask < 0 {
		g.reject("Select a task to hyperfocus on.")
		return
	}
	if len(g.hand) < 3 {
		g.reject("Need at least 3 cards to hyperfocus.")
		return
	}

	t := g.currentTasks[g.selectedTask]
	for i := 0; i < 3; i++ {
		g.resources.Discard(g.hand[0])
		g.hand = g.hand[1:]
	}
	g.flags.hyperfocusUsed = true
	g.flags.firstTaskAttempted = true

	g.currentDeck().Discard(t)
	g.completedTasks = append(g.completedTasks, t.Name)
	g.currentTasks = append(g.currentTasks[:g.selectedTask], g.currentTasks[g.selectedTask+1:]...)
	g.selectedCards = map[int]bool{}
	g.selectedTask = -1
	g.message = fmt.Sprintf("HYPERFOCUS! Completed: %s", t.Name)

	if t.Effect != nil {
		g.applyEffect(*t.Effect)
	}
}

// DiscardToDraw trades exactly two selected cards for two fresh ones.
// Once per turn, not while burnt out, not with a task selected.
func (g *Game) DiscardToDraw() {
	if g.rejectIfOver() {
		return
	}
	if g.burntOut {
		g.reject("You are burnt out and too exhausted to search for cards.")
		return
	}
	if g.flags.discardToDrawUsed {
		g.reject("Discard 2, Draw 2 already used this turn.")
		return
	}
	if g.selectedTask >= 0 {
		g.reject("Cannot discard cards while a task is selected.")
		return
	}
	if len(g.selectedCards) != 2 {
		g.reject("Select exactly 2 cards to discard.")
		return
	}

	g.discardSelected()
	g.flags.discardToDrawUsed = true
	g.hand = append(g.hand, g.resources.Draw(2)...)
	g.message = "Discarded 2, drew 2."
}

// SpendToRemoveStress trades exactly three selected cards for one point
// of stress, no more, regardless of the cards' kinds.
func (g *Game) SpendToRemoveStress() {
	if g.rejectIfOver() {
		return
	}
	if g.burntOut {
		g.reject("You are burnt out. This has no effect.")
		return
	}
	if g.selectedTask >= 0 {
		g.reject("Cannot spend cards while a task is selected.")
		return
	}
	if g.stress <= 0 {
		g.reject("No stress to remove.")
		return
	}
	if len(g.selectedCards) != 3 {
		g.reject("Select exactly 3 cards to spend.")
		return
	}

	g.discardSelected()
	g.stress--
	g.message = "Spent 3 cards to remove 1 stress."
}

// EndTurn closes out the timeslot: exhaustion and ADHD discards, unresolved
// tasks to the backlog with their stress, hand cleared, once-per-turn state
// reset, then the next turn (or the terminal summary) begins.
func (g *Game) EndTurn() {
	if g.rejectIfOver() {
		return
	}

	if g.burntOut && len(g.hand) > 0 {
		g.resources.Discard(g.hand[0])
		g.hand = g.hand[1:]
		g.message = "Critical Exhaustion: Discarded 1 card. "
	} else {
		g.message = ""
	}

	// Count before moving: 1 stress per unresolved task.
	stressFromBacklog := len(g.currentTasks)
	for len(g.currentTasks) > 0 {
		last := len(g.currentTasks) - 1
		g.currentDeck().PushBacklog(g.currentTasks[last])
		g.currentTasks = g.currentTasks[:last]
	}

	if g.conditions.Has(condition.ADHD) && len(g.hand) > 0 {
		n := min(len(g.hand), 2)
		for i := 0; i < n; i++ {
			g.resources.Discard(g.hand[0])
			g.hand = g.hand[1:]
		}
		g.message += fmt.Sprintf("End Turn. Discarded %d cards (ADHD penalty).", n)
	} else {
		g.message += "End Turn."
	}

	if stressFromBacklog > 0 {
		g.addStress(stressFromBacklog)
		if g.gameOver {
			return
		}
		g.message += fmt.Sprintf(" (+%d Stress from lingering tasks)", stressFromBacklog)
	}

	for len(g.hand) > 0 {
		last := len(g.hand) - 1
		g.resources.Discard(g.hand[last])
		g.hand = g.hand[:last]
	}
	g.selectedCards = map[int]bool{}
	g.selectedTask = -1

	g.flags = turnFlags{}
	g.stressShield = 0
	g.turnCostReduction = task.Cost{}

	g.turn++
	if g.turn > len(task.Timeslots()) {
		g.turn = 1
		g.day++
	}

	if g.mode != ModeLife && g.day > g.dayLimit {
		g.endGame()
		return
	}

	g.drawHand()
	g.dealTasks()
	g.message += fmt.Sprintf(" Day %d - %s (Turn %d) started.", g.day, g.Timeslot(), g.turn)
}
