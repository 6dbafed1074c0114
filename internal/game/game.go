// Package game holds the whole game state and the turn action state
// machine that mutates it. Everything is synchronous: an action either
// completes atomically or is rejected as a no-op with an advisory
// message before any mutation happens.
package game

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"nofs/internal/card"
	"nofs/internal/condition"
	"nofs/internal/deck"
	"nofs/internal/task"
)

// Mode selects how long a run lasts.
type Mode string

const (
	ModeDay  Mode = "day"
	ModeWeek Mode = "week"
	ModeLife Mode = "life"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDay, ModeWeek, ModeLife:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode: %q", s)
}

const (
	cardsPerKind = 20
	tasksPerTurn = 2
	maxStress    = 7
	baseHandSize = 5
	skipStress   = 2

	// tasksPerDay is the denominator unit for grading: two tasks per
	// turn, four turns per day.
	tasksPerDay = 8
)

// turnFlags are the once-per-turn gates, reset together at end of turn.
type turnFlags struct {
	firstTaskAttempted bool
	hyperfocusUsed     bool
	discardToDrawUsed  bool
}

// Game is the aggregate root. It is exclusively owned by its caller and
// not safe for concurrent use; callers serialize actions.
type Game struct {
	mode       Mode
	dayLimit   int // 0 in life mode (unbounded)
	conditions condition.Set

	day  int
	turn int // 1..4, cyclic

	resources *card.Pile
	hand      []card.Card

	decks   map[task.Timeslot]*deck.TaskDeck
	catalog *task.Catalog

	currentTasks []task.Task

	selectedCards map[int]bool
	selectedTask  int // -1 when none

	stress            int
	stressShield      int
	burntOut          bool
	flags             turnFlags
	turnCostReduction task.Cost

	completedTasks []string
	gameOver       bool
	grade          string
	message        string

	rng *rand.Rand
}

// Option customizes construction, mainly for tests and the simulator.
type Option func(*Game)

// WithRand injects the random source used for every shuffle.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithCatalog replaces the embedded task catalog.
func WithCatalog(c *task.Catalog) Option {
	return func(g *Game) { g.catalog = c }
}

// New creates a run from a mode and a fixed condition selection. It
// never fails for a valid mode; the only error source is catalog
// loading.
func New(mode Mode, conds condition.Set, opts ...Option) (*Game, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}

	g := &Game{
		mode:          mode,
		conditions:    conds,
		day:           1,
		turn:          1,
		selectedCards: map[int]bool{},
		selectedTask:  -1,
	}
	if g.conditions == nil {
		g.conditions = condition.Set{}
	}
	switch mode {
	case ModeDay:
		g.dayLimit = 1
	case ModeWeek:
		g.dayLimit = 7
	case ModeLife:
		g.dayLimit = 0
	}

	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.catalog == nil {
		c, err := task.DefaultCatalog()
		if err != nil {
			return nil, err
		}
		g.catalog = c
	}

	g.resources = card.NewPile(cardsPerKind, g.rng)
	g.decks = map[task.Timeslot]*deck.TaskDeck{}
	for _, slot := range task.Timeslots() {
		g.decks[slot] = deck.New(slot, g.catalog.ByTimeslot(slot), g.rng)
	}

	g.drawHand()
	g.dealTasks()
	g.message = fmt.Sprintf("Day 1 - %s (Turn 1) started.", task.TimeslotForTurn(1))
	return g, nil
}

func (g *Game) currentDeck() *deck.TaskDeck {
	return g.decks[task.TimeslotForTurn(g.turn)]
}

func (g *Game) drawHand() {
	g.hand = append(g.hand, g.resources.Draw(g.handSize())...)
}

func (g *Game) dealTasks() {
	g.currentTasks = g.currentDeck().DealUpTo(tasksPerTurn)
}

// --- read surface ---

func (g *Game) Mode() Mode { return g.mode }

// DayLimit is the number of days in a finite run; 0 means unbounded.
func (g *Game) DayLimit() int { return g.dayLimit }

func (g *Game) Day() int                { return g.day }
func (g *Game) Turn() int               { return g.turn }
func (g *Game) Timeslot() task.Timeslot { return task.TimeslotForTurn(g.turn) }

func (g *Game) Stress() int       { return g.stress }
func (g *Game) StressShield() int { return g.stressShield }
func (g *Game) BurntOut() bool    { return g.burntOut }
func (g *Game) GameOver() bool    { return g.gameOver }
func (g *Game) Message() string   { return g.message }

// Grade is the terminal letter grade, empty until the game ends by
// day limit without burnout.
func (g *Game) Grade() string { return g.grade }

func (g *Game) Conditions() condition.Set {
	out := condition.Set{}
	for c := range g.conditions {
		out[c] = true
	}
	return out
}

func (g *Game) Hand() []card.Card {
	out := make([]card.Card, len(g.hand))
	copy(out, g.hand)
	return out
}

func (g *Game) CurrentTasks() []task.Task {
	out := make([]task.Task, len(g.currentTasks))
	copy(out, g.currentTasks)
	return out
}

func (g *Game) CompletedTasks() []string {
	out := make([]string, len(g.completedTasks))
	copy(out, g.completedTasks)
	return out
}

// SelectedCards returns the selected hand indices in ascending order.
func (g *Game) SelectedCards() []int {
	var out []int
	for i := range g.selectedCards {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SelectedTask is the selected task row index, or -1.
func (g *Game) SelectedTask() int { return g.selectedTask }

// DiscardToDrawUsed reports whether this turn's discard-to-draw has
// been spent; strategies consult it before proposing the action.
func (g *Game) DiscardToDrawUsed() bool { return g.flags.discardToDrawUsed }

// ClearSelections drops any card and task selection without touching
// the rest of the state.
func (g *Game) ClearSelections() {
	if g.gameOver {
		return
	}
	g.selectedCards = map[int]bool{}
	g.selectedTask = -1
}

// ResourceCounts reports the deck/discard/hand split of the 60-card
// resource pool.
func (g *Game) ResourceCounts() (deckSize, discardSize, handSize int) {
	return g.resources.DrawSize(), g.resources.DiscardSize(), len(g.hand)
}

// TaskDeckCounts reports one slot's draw/discard/backlog split.
func (g *Game) TaskDeckCounts(slot task.Timeslot) (drawSize, discardSize, backlogSize int) {
	d := g.decks[slot]
	return d.DrawSize(), d.DiscardSize(), d.BacklogSize()
}

// CatalogCount is the fixed task count for one slot, for conservation
// checks.
func (g *Game) CatalogCount(slot task.Timeslot) int {
	return g.catalog.CountFor(slot)
}
