package task

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog is the static task table the engine deals from, grouped by
// timeslot at load time.
type Catalog struct {
	Tasks []Task `yaml:"tasks"`
}

// DefaultCatalog parses the embedded task table.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(embeddedCatalog)
}

// LoadCatalog reads a task table from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) Validate() error {
	if len(c.Tasks) == 0 {
		return fmt.Errorf("catalog has no tasks")
	}
	valid := map[Timeslot]bool{}
	for _, s := range Timeslots() {
		valid[s] = true
	}
	for _, t := range c.Tasks {
		if t.Name == "" {
			return fmt.Errorf("catalog task with empty name")
		}
		if !valid[t.Time] {
			return fmt.Errorf("task %q: unknown timeslot %q", t.Name, t.Time)
		}
		if t.Cost.Physical < 0 || t.Cost.Social < 0 || t.Cost.Mental < 0 {
			return fmt.Errorf("task %q: negative cost", t.Name)
		}
		if t.Effect != nil {
			if err := t.Effect.Validate(); err != nil {
				return fmt.Errorf("task %q: %w", t.Name, err)
			}
		}
	}
	return nil
}

// ByTimeslot returns value copies of every task in one slot, in catalog
// order.
func (c *Catalog) ByTimeslot(s Timeslot) []Task {
	var out []Task
	for _, t := range c.Tasks {
		if t.Time == s {
			out = append(out, t)
		}
	}
	return out
}

// CountFor is the fixed catalog size for a slot, used by conservation
// checks.
func (c *Catalog) CountFor(s Timeslot) int {
	return len(c.ByTimeslot(s))
}
