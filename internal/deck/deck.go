// Package deck owns the four timeslot task decks: a shuffled draw pile,
// a face-up discard, and the backlog stack of tasks carried over from
// earlier turns of the same slot.
package deck

import (
	"math/rand"

	"nofs/internal/task"
)

type TaskDeck struct {
	slot    task.Timeslot
	rng     *rand.Rand
	draw    []task.Task
	discard []task.Task
	backlog []task.Task
}

// New builds a shuffled deck for one timeslot from its catalog tasks.
func New(slot task.Timeslot, tasks []task.Task, rng *rand.Rand) *TaskDeck {
	d := &TaskDeck{slot: slot, rng: rng}
	d.draw = append(d.draw, tasks...)
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
	return d
}

func (d *TaskDeck) Slot() task.Timeslot { return d.slot }

// DealUpTo fills a turn's task row. When the draw pile is short it
// shuffles the discard back in first. Backlogged tasks take the first
// seat, then the draw pile, then any backlog that still remains.
func (d *TaskDeck) DealUpTo(n int) []task.Task {
	if len(d.draw) < n && len(d.discard) > 0 {
		d.rng.Shuffle(len(d.discard), func(i, j int) {
			d.discard[i], d.discard[j] = d.discard[j], d.discard[i]
		})
		d.draw = append(d.draw, d.discard...)
		d.discard = d.discard[:0]
	}

	var out []task.Task
	if len(d.backlog) > 0 {
		out = append(out, d.popBacklog())
	}
	for len(out) < n && len(d.draw) > 0 {
		out = append(out, d.popDraw())
	}
	for len(out) < n && len(d.backlog) > 0 {
		out = append(out, d.popBacklog())
	}
	return out
}

// Discard receives a completed or skipped task.
func (d *TaskDeck) Discard(t task.Task) {
	d.discard = append(d.discard, t)
}

// PushBacklog stacks an unresolved task for a future occurrence of this
// slot. Last in, first out.
func (d *TaskDeck) PushBacklog(t task.Task) {
	d.backlog = append(d.backlog, t)
}

func (d *TaskDeck) popDraw() task.Task {
	t := d.draw[len(d.draw)-1]
	d.draw = d.draw[:len(d.draw)-1]
	return t
}

func (d *TaskDeck) popBacklog() task.Task {
	t := d.backlog[len(d.backlog)-1]
	d.backlog = d.backlog[:len(d.backlog)-1]
	return t
}

func (d *TaskDeck) DrawSize() int    { return len(d.draw) }
func (d *TaskDeck) DiscardSize() int { return len(d.discard) }
func (d *TaskDeck) BacklogSize() int { return len(d.backlog) }

// Size is every task currently held by this deck, across all three
// stacks.
func (d *TaskDeck) Size() int {
	return len(d.draw) + len(d.discard) + len(d.backlog)
}
