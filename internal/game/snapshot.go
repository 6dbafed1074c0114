package game

import (
	"nofs/internal/card"
	"nofs/internal/task"
)

// Snapshot is the read surface in one serializable value, consumed by
// the HTTP API and the TUI.
type Snapshot struct {
	Mode       Mode          `json:"mode"`
	Conditions []string      `json:"conditions"`
	Day        int           `json:"day"`
	DayLimit   int           `json:"day_limit,omitempty"`
	Turn       int           `json:"turn"`
	Timeslot   task.Timeslot `json:"timeslot"`

	Hand          []card.Card `json:"hand"`
	CurrentTasks  []task.Task `json:"current_tasks"`
	ModifiedCosts []task.Cost `json:"modified_costs"`

	SelectedCards []int `json:"selected_cards"`
	SelectedTask  int   `json:"selected_task"`

	Stress       int  `json:"stress"`
	StressShield int  `json:"stress_shield"`
	BurntOut     bool `json:"burnt_out"`

	CompletedTasks []string `json:"completed_tasks"`
	GameOver       bool     `json:"game_over"`
	Grade          string   `json:"grade,omitempty"`
	Message        string   `json:"message"`

	ResourceDeck    int `json:"resource_deck"`
	ResourceDiscard int `json:"resource_discard"`
}

func (g *Game) Snapshot() Snapshot {
	costs := make([]task.Cost, len(g.currentTasks))
	for i, t := range g.currentTasks {
		costs[i] = g.ModifiedCost(t)
	}
	deckSize, discardSize, _ := g.ResourceCounts()
	return Snapshot{
		Mode:            g.mode,
		Conditions:      g.conditions.Strings(),
		Day:             g.day,
		DayLimit:        g.dayLimit,
		Turn:            g.turn,
		Timeslot:        g.Timeslot(),
		Hand:            g.Hand(),
		CurrentTasks:    g.CurrentTasks(),
		ModifiedCosts:   costs,
		SelectedCards:   g.SelectedCards(),
		SelectedTask:    g.selectedTask,
		Stress:          g.stress,
		StressShield:    g.stressShield,
		BurntOut:        g.burntOut,
		CompletedTasks:  g.CompletedTasks(),
		GameOver:        g.gameOver,
		Grade:           g.grade,
		Message:         g.message,
		ResourceDeck:    deckSize,
		ResourceDiscard: discardSize,
	}
}
