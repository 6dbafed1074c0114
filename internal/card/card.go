package card

import "fmt"

// Kind is the resource flavor printed on an F-card.
type Kind string

const (
	Physical Kind = "physical"
	Social   Kind = "social"
	Mental   Kind = "mental"
)

// Kinds returns every card kind in display order.
func Kinds() []Kind {
	return []Kind{Physical, Social, Mental}
}

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Physical, Social, Mental:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown card kind: %q", s)
}

// Card is a single resource token. Cards carry no identity beyond their
// kind; two physical cards are interchangeable.
type Card struct {
	Kind Kind `json:"kind"`
}
