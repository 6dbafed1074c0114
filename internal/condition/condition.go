package condition

import (
	"fmt"
	"sort"
)

// Condition is a run-long modifier chosen at game creation. All rule
// behavior for conditions lives in the engine; this package only names
// them and carries their display text.
type Condition string

const (
	Depression Condition = "depression"
	ADHD       Condition = "adhd"
	Anxiety    Condition = "anxiety"
	ExecDys    Condition = "execDys"
	Dyslexia   Condition = "dyslexia"
	ASD        Condition = "asd"
)

// All returns every condition in display order.
func All() []Condition {
	return []Condition{Depression, ADHD, Anxiety, ExecDys, Dyslexia, ASD}
}

func Parse(s string) (Condition, error) {
	switch Condition(s) {
	case Depression, ADHD, Anxiety, ExecDys, Dyslexia, ASD:
		return Condition(s), nil
	}
	return "", fmt.Errorf("unknown condition: %q", s)
}

// Set is the fixed condition selection for a run.
type Set map[Condition]bool

func NewSet(conds ...Condition) Set {
	s := Set{}
	for _, c := range conds {
		s[c] = true
	}
	return s
}

// ParseSet builds a Set from raw strings, rejecting unknown tags.
func ParseSet(names []string) (Set, error) {
	s := Set{}
	for _, n := range names {
		c, err := Parse(n)
		if err != nil {
			return nil, err
		}
		s[c] = true
	}
	return s, nil
}

func (s Set) Has(c Condition) bool { return s[c] }

// List returns the active conditions in a stable order.
func (s Set) List() []Condition {
	var out []Condition
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s Set) Strings() []string {
	var out []string
	for _, c := range s.List() {
		out = append(out, string(c))
	}
	return out
}
