package card

import "math/rand"

// Pile owns the face-down resource draw pile and its discard. The top of
// the pile is the last element, so drawing pops from the end.
type Pile struct {
	rng     *rand.Rand
	draw    []Card
	discard []Card
}

// NewPile builds a shuffled pile with perKind cards of each kind.
func NewPile(perKind int, rng *rand.Rand) *Pile {
	p := &Pile{rng: rng}
	for _, k := range Kinds() {
		for i := 0; i < perKind; i++ {
			p.draw = append(p.draw, Card{Kind: k})
		}
	}
	p.shuffle(p.draw)
	return p
}

func (p *Pile) shuffle(cs []Card) {
	p.rng.Shuffle(len(cs), func(i, j int) {
		cs[i], cs[j] = cs[j], cs[i]
	})
}

// restock shuffles the discard and stacks it on top of whatever remains
// of the draw pile.
func (p *Pile) restock() {
	if len(p.discard) == 0 {
		return
	}
	p.shuffle(p.discard)
	p.draw = append(p.draw, p.discard...)
	p.discard = p.discard[:0]
}

// Draw removes up to n cards from the top of the pile. When the pile is
// short it restocks from the discard first; if both run dry it returns
// fewer than n cards rather than blocking.
func (p *Pile) Draw(n int) []Card {
	if len(p.draw) < n {
		p.restock()
	}
	var out []Card
	for i := 0; i < n && len(p.draw) > 0; i++ {
		out = append(out, p.pop())
	}
	return out
}

// DrawKind pulls up to n cards of one kind, scanning from the top of the
// pile down. If the pile runs out of matches it restocks the discard
// exactly once and scans again, then gives up.
func (p *Pile) DrawKind(k Kind, n int) []Card {
	out := p.takeKind(k, n)
	if len(out) < n {
		p.restock()
		out = append(out, p.takeKind(k, n-len(out))...)
	}
	return out
}

func (p *Pile) takeKind(k Kind, n int) []Card {
	var out []Card
	for i := len(p.draw) - 1; i >= 0 && len(out) < n; i-- {
		if p.draw[i].Kind == k {
			out = append(out, p.draw[i])
			p.draw = append(p.draw[:i], p.draw[i+1:]...)
		}
	}
	return out
}

func (p *Pile) pop() Card {
	c := p.draw[len(p.draw)-1]
	p.draw = p.draw[:len(p.draw)-1]
	return c
}

// Discard places cards face up on the discard pile.
func (p *Pile) Discard(cs ...Card) {
	p.discard = append(p.discard, cs...)
}

func (p *Pile) DrawSize() int    { return len(p.draw) }
func (p *Pile) DiscardSize() int { return len(p.discard) }
