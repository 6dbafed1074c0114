package task

import (
	"fmt"

	"nofs/internal/card"
)

// Timeslot names one of the four turns that make up a day.
type Timeslot string

const (
	Morning   Timeslot = "Morning"
	Midday    Timeslot = "Midday"
	Afternoon Timeslot = "Afternoon"
	Evening   Timeslot = "Evening"
)

// Timeslots returns the slots in play order.
func Timeslots() []Timeslot {
	return []Timeslot{Morning, Midday, Afternoon, Evening}
}

// TimeslotForTurn maps a turn number (1..4) to its slot.
func TimeslotForTurn(turn int) Timeslot {
	slots := Timeslots()
	if turn < 1 || turn > len(slots) {
		return ""
	}
	return slots[turn-1]
}

// Cost is the number of cards of each kind a task demands. A zero field
// means that kind is not required.
type Cost struct {
	Physical int `yaml:"physical,omitempty" json:"physical,omitempty"`
	Social   int `yaml:"social,omitempty" json:"social,omitempty"`
	Mental   int `yaml:"mental,omitempty" json:"mental,omitempty"`
}

func (c Cost) Get(k card.Kind) int {
	switch k {
	case card.Physical:
		return c.Physical
	case card.Social:
		return c.Social
	case card.Mental:
		return c.Mental
	}
	return 0
}

func (c *Cost) Set(k card.Kind, n int) {
	switch k {
	case card.Physical:
		c.Physical = n
	case card.Social:
		c.Social = n
	case card.Mental:
		c.Mental = n
	}
}

func (c Cost) Total() int {
	return c.Physical + c.Social + c.Mental
}

func (c Cost) String() string {
	return fmt.Sprintf("%dP/%dS/%dM", c.Physical, c.Social, c.Mental)
}

// Task is immutable reference data from the catalog. Instances move
// between decks as value copies.
type Task struct {
	Name   string   `yaml:"name" json:"name"`
	Cost   Cost     `yaml:"cost" json:"cost"`
	Time   Timeslot `yaml:"time" json:"time"`
	Effect *Effect  `yaml:"effect,omitempty" json:"effect,omitempty"`

	// Presentation-only fields; the engine never reads them.
	Flavor string `yaml:"flavor,omitempty" json:"flavor,omitempty"`
	Image  string `yaml:"image,omitempty" json:"image,omitempty"`
}
