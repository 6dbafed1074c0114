package condition

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed conditions.yaml
var embeddedInfo []byte

// Info is display text for one condition. It is informational only; the
// engine hard-codes every behavioral rule.
type Info struct {
	ID   Condition `yaml:"id" json:"id"`
	Name string    `yaml:"name" json:"name"`
	Rule string    `yaml:"rule" json:"rule"`
}

// LoadInfo parses the embedded condition text, keyed by condition.
func LoadInfo() (map[Condition]Info, error) {
	var doc struct {
		Conditions []Info `yaml:"conditions"`
	}
	if err := yaml.Unmarshal(embeddedInfo, &doc); err != nil {
		return nil, fmt.Errorf("parse condition info: %w", err)
	}
	out := make(map[Condition]Info, len(doc.Conditions))
	for _, info := range doc.Conditions {
		if _, err := Parse(string(info.ID)); err != nil {
			return nil, err
		}
		out[info.ID] = info
	}
	return out, nil
}
