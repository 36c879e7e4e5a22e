package program

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// Weeks is the length of every program's phase schedule.
	Weeks = 6
	// SessionsPerWeek is the number of training sessions in a week.
	SessionsPerWeek = 3
)

// Exercise is one entry of a program's ordered exercise list.
type Exercise struct {
	Name string `json:"name" yaml:"name"`
	// DefaultMax is a suggested 10RM in kg for prefilling input forms.
	// It is never substituted for a missing user value.
	DefaultMax float64 `json:"default_max_kg,omitempty" yaml:"default_max"`
}

// Program is a six-week training template.
type Program struct {
	Name      string       `json:"name"`
	Info      string       `json:"info"`
	Exercises []Exercise   `json:"exercises"`
	Phases    [Weeks]Phase `json:"phases"`
}

// ExerciseNames returns the exercise names in declared order.
func (p Program) ExerciseNames() []string {
	names := make([]string, len(p.Exercises))
	for i, e := range p.Exercises {
		names[i] = e.Name
	}
	return names
}

// Phase is the prescription for one week of a program.
type Phase struct {
	Week        int                      `json:"week"`
	Reps        string                   `json:"reps"`
	Sets        Sets                     `json:"sets"`
	Multipliers [SessionsPerWeek]float64 `json:"multipliers"`
	DropSet     bool                     `json:"drop_set"`
	Note        string                   `json:"note,omitempty"`
}

// HasDropSet reports whether the final set of the week is a drop set,
// either flagged on the phase or carried by the set scheme.
func (p Phase) HasDropSet() bool {
	return p.DropSet || p.Sets.DropSets > 0
}

// Sets is the set scheme of a phase: a number of heavy sets, optionally
// followed by drop sets.
type Sets struct {
	Heavy    int
	DropSets int
}

// Fixed returns a scheme of n straight sets.
func Fixed(n int) Sets {
	return Sets{Heavy: n}
}

// FixedPlusDrop returns n heavy sets followed by d drop sets.
func FixedPlusDrop(n, d int) Sets {
	return Sets{Heavy: n, DropSets: d}
}

// String renders the scheme the way it is printed in a table: "2" or
// "4 + 1 (dropp)".
func (s Sets) String() string {
	if s.DropSets == 0 {
		return strconv.Itoa(s.Heavy)
	}
	return fmt.Sprintf("%d + %d (dropp)", s.Heavy, s.DropSets)
}

// MarshalJSON encodes the scheme with its display label.
func (s Sets) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Heavy int    `json:"heavy"`
		Drop  int    `json:"drop"`
		Label string `json:"label"`
	}{s.Heavy, s.DropSets, s.String()})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (s *Sets) UnmarshalJSON(b []byte) error {
	var doc struct {
		Heavy int `json:"heavy"`
		Drop  int `json:"drop"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*s = FixedPlusDrop(doc.Heavy, doc.Drop)
	return nil
}

// UnmarshalYAML accepts either a plain count ("sets: 2") or a mapping
// ("sets: {heavy: 4, drop: 1}").
func (s *Sets) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var count int
		if err := n.Decode(&count); err != nil {
			return fmt.Errorf("sets: %w", err)
		}
		*s = Fixed(count)
		return nil
	}
	var doc struct {
		Heavy int `yaml:"heavy"`
		Drop  int `yaml:"drop"`
	}
	if err := n.Decode(&doc); err != nil {
		return fmt.Errorf("sets: %w", err)
	}
	*s = FixedPlusDrop(doc.Heavy, doc.Drop)
	return nil
}
