// Package load turns a program phase and a set of 10RM inputs into the
// weekly table of prescribed loads.
package load

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/claude/tenrm/internal/program"
)

// DropSetAdvisory is shown for weeks whose final set is a drop set.
const DropSetAdvisory = "Droppsett: På siste settet reduserer du vekten (ca 20-30%) og tar så mange reps du klarer."

// Row is one exercise of the weekly table.
type Row struct {
	Exercise string                      `json:"exercise"`
	Sets     string                      `json:"sets"`
	Reps     string                      `json:"reps"`
	Weights  [program.SessionsPerWeek]Kg `json:"weights_kg"`
}

// Table is the computed prescription for one program week.
type Table struct {
	Program    string                          `json:"program"`
	Info       string                          `json:"info"`
	Week       int                             `json:"week"`
	Reps       string                          `json:"reps"`
	Sets       string                          `json:"sets"`
	Sessions   [program.SessionsPerWeek]string `json:"sessions"`
	Rows       []Row                           `json:"rows"`
	HasDropSet bool                            `json:"has_drop_set"`
	Advisories []string                        `json:"advisories,omitempty"`
}

// Calculator computes load tables against an injected catalog.
type Calculator struct {
	catalog *program.Catalog
	log     *slog.Logger
}

// NewCalculator creates a Calculator.
func NewCalculator(catalog *program.Catalog, log *slog.Logger) *Calculator {
	return &Calculator{catalog: catalog, log: log}
}

// Catalog returns the catalog the calculator reads from.
func (c *Calculator) Catalog() *program.Catalog {
	return c.catalog
}

// ComputeTable builds the table for a program week. Every exercise of the
// program needs a finite positive 10RM in maxes; keys for other exercises
// are ignored. No table is returned when any input is missing or invalid.
func (c *Calculator) ComputeTable(programName string, week int, maxes map[string]float64) (*Table, error) {
	p, err := c.catalog.GetProgram(programName)
	if err != nil {
		return nil, err
	}
	phase, err := c.catalog.GetPhase(programName, week)
	if err != nil {
		return nil, err
	}
	if err := checkMaxes(p, maxes); err != nil {
		return nil, err
	}

	t := &Table{
		Program:    p.Name,
		Info:       p.Info,
		Week:       phase.Week,
		Reps:       phase.Reps,
		Sets:       phase.Sets.String(),
		Sessions:   c.catalog.Sessions(),
		Rows:       make([]Row, 0, len(p.Exercises)),
		HasDropSet: phase.HasDropSet(),
	}
	if t.HasDropSet {
		t.Advisories = append(t.Advisories, DropSetAdvisory)
	}
	if phase.Note != "" {
		t.Advisories = append(t.Advisories, phase.Note)
	}

	for _, e := range p.Exercises {
		row, err := computeRow(e.Name, maxes[e.Name], phase)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, row)
	}

	if c.log != nil {
		c.log.Debug("table computed", "program", p.Name, "week", week, "rows", len(t.Rows))
	}
	return t, nil
}

// computeRow fails when a 10RM is so large that a session weight overflows.
func computeRow(exercise string, rm float64, phase program.Phase) (Row, error) {
	row := Row{
		Exercise: exercise,
		Sets:     phase.Sets.String(),
		Reps:     phase.Reps,
	}
	for i, m := range phase.Multipliers {
		w := Round(rm * m)
		if math.IsInf(float64(w), 0) || math.IsNaN(float64(w)) {
			return Row{}, &InvalidValueError{Exercise: exercise, Value: rm}
		}
		row.Weights[i] = w
	}
	return row, nil
}

func checkMaxes(p program.Program, maxes map[string]float64) error {
	for _, e := range p.Exercises {
		rm, ok := maxes[e.Name]
		if !ok {
			return &MissingInputError{Exercise: e.Name}
		}
		if math.IsNaN(rm) || math.IsInf(rm, 0) || rm <= 0 {
			return &InvalidValueError{Exercise: e.Name, Value: rm}
		}
	}
	return nil
}

// ParseMax parses a 10RM typed by a user. A decimal comma is accepted.
func ParseMax(exercise, s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "kg"))
	v, err := strconv.ParseFloat(strings.Replace(trimmed, ",", ".", 1), 64)
	if err != nil {
		return 0, &InvalidValueError{Exercise: exercise, Raw: s}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, &InvalidValueError{Exercise: exercise, Value: v}
	}
	return v, nil
}

// DefaultMaxes returns the program's suggested 10RM values for prefilling
// forms. Exercises without a suggestion are left out.
func DefaultMaxes(p program.Program) map[string]float64 {
	maxes := make(map[string]float64, len(p.Exercises))
	for _, e := range p.Exercises {
		if e.DefaultMax > 0 {
			maxes[e.Name] = e.DefaultMax
		}
	}
	return maxes
}
