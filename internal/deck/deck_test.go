package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nofs/internal/task"
)

func slotTasks(names ...string) []task.Task {
	out := make([]task.Task, len(names))
	for i, n := range names {
		out[i] = task.Task{Name: n, Time: task.Morning}
	}
	return out
}

func newTestDeck(names ...string) *TaskDeck {
	return New(task.Morning, slotTasks(names...), rand.New(rand.NewSource(7)))
}

func TestDealUpTo_FromDrawPile(t *testing.T) {
	d := newTestDeck("a", "b", "c", "d")
	dealt := d.DealUpTo(2)
	require.Len(t, dealt, 2)
	assert.Equal(t, 2, d.DrawSize())
}

func TestDealUpTo_BacklogTakesFirstSeat(t *testing.T) {
	d := newTestDeck("a", "b", "c")
	d.PushBacklog(task.Task{Name: "lingering", Time: task.Morning})

	dealt := d.DealUpTo(2)
	require.Len(t, dealt, 2)
	assert.Equal(t, "lingering", dealt[0].Name)
	assert.Equal(t, 0, d.BacklogSize())
}

func TestDealUpTo_BacklogIsLIFO(t *testing.T) {
	d := New(task.Morning, nil, rand.New(rand.NewSource(7)))
	d.PushBacklog(task.Task{Name: "older"})
	d.PushBacklog(task.Task{Name: "newer"})

	dealt := d.DealUpTo(2)
	require.Len(t, dealt, 2)
	assert.Equal(t, "newer", dealt[0].Name)
	assert.Equal(t, "older", dealt[1].Name)
}

func TestDealUpTo_RefillsShortDrawPile(t *testing.T) {
	d := newTestDeck("a", "b", "c")
	first := d.DealUpTo(2)
	require.Len(t, first, 2)
	for _, tk := range first {
		d.Discard(tk)
	}

	// One card left in the pile, two in the discard: the deal must
	// shuffle the discard back in and still hand out two tasks.
	second := d.DealUpTo(2)
	assert.Len(t, second, 2)
	assert.Equal(t, 0, d.DiscardSize())
}

func TestSize_Conservation(t *testing.T) {
	d := newTestDeck("a", "b", "c", "d", "e")
	for i := 0; i < 20; i++ {
		dealt := d.DealUpTo(2)
		for j, tk := range dealt {
			if j == 0 {
				d.Discard(tk)
			} else {
				d.PushBacklog(tk)
			}
		}
		assert.Equal(t, 5, d.Size())
	}
}
