package program

import (
	"fmt"
	"math"
	"slices"
)

// Catalog is the registry of training programs. It is read-only after
// construction and may be shared between goroutines without locking.
type Catalog struct {
	sessions [SessionsPerWeek]string
	programs []Program
	index    map[string]int
}

// New builds a catalog from programs in declaration order and validates it.
func New(sessions [SessionsPerWeek]string, programs ...Program) (*Catalog, error) {
	if len(programs) == 0 {
		return nil, fmt.Errorf("catalog has no programs")
	}
	c := &Catalog{
		sessions: sessions,
		programs: make([]Program, 0, len(programs)),
		index:    make(map[string]int, len(programs)),
	}
	for _, p := range programs {
		if err := validateProgram(p); err != nil {
			return nil, err
		}
		if _, dup := c.index[p.Name]; dup {
			return nil, fmt.Errorf("duplicate program %q", p.Name)
		}
		p.Exercises = slices.Clone(p.Exercises)
		c.index[p.Name] = len(c.programs)
		c.programs = append(c.programs, p)
	}
	return c, nil
}

// ListPrograms returns program names in declaration order.
func (c *Catalog) ListPrograms() []string {
	names := make([]string, len(c.programs))
	for i, p := range c.programs {
		names[i] = p.Name
	}
	return names
}

// GetProgram returns a copy of the named program.
func (c *Catalog) GetProgram(name string) (Program, error) {
	i, ok := c.index[name]
	if !ok {
		return Program{}, &NotFoundError{Kind: "program", Program: name}
	}
	p := c.programs[i]
	p.Exercises = slices.Clone(p.Exercises)
	return p, nil
}

// GetPhase returns the phase of the named program for week 1..6.
func (c *Catalog) GetPhase(name string, week int) (Phase, error) {
	p, err := c.GetProgram(name)
	if err != nil {
		return Phase{}, err
	}
	if week < 1 || week > Weeks || p.Phases[week-1].Week != week {
		return Phase{}, &NotFoundError{Kind: "week", Program: name, Week: week}
	}
	return p.Phases[week-1], nil
}

// Sessions returns the labels of the three weekly sessions.
func (c *Catalog) Sessions() [SessionsPerWeek]string {
	return c.sessions
}

func validateProgram(p Program) error {
	if p.Name == "" {
		return fmt.Errorf("program with empty name")
	}
	if len(p.Exercises) == 0 {
		return fmt.Errorf("program %q: no exercises", p.Name)
	}
	seen := make(map[string]bool, len(p.Exercises))
	for _, e := range p.Exercises {
		if e.Name == "" {
			return fmt.Errorf("program %q: exercise with empty name", p.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("program %q: duplicate exercise %q", p.Name, e.Name)
		}
		seen[e.Name] = true
		if e.DefaultMax < 0 {
			return fmt.Errorf("program %q: exercise %q: negative default max", p.Name, e.Name)
		}
	}
	for i, ph := range p.Phases {
		if ph.Week != i+1 {
			return fmt.Errorf("program %q: week %d missing", p.Name, i+1)
		}
		if err := validatePhase(ph); err != nil {
			return fmt.Errorf("program %q week %d: %w", p.Name, ph.Week, err)
		}
	}
	return nil
}

func validatePhase(ph Phase) error {
	if ph.Reps == "" {
		return fmt.Errorf("empty reps")
	}
	if ph.Sets.Heavy < 1 || ph.Sets.DropSets < 0 {
		return fmt.Errorf("invalid sets %+v", ph.Sets)
	}
	for i, m := range ph.Multipliers {
		if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
			return fmt.Errorf("session %d: multiplier %v must be positive", i+1, m)
		}
	}
	return nil
}
