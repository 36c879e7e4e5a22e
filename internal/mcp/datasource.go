package mcp

import (
	"context"

	"github.com/claude/tenrm/internal/load"
	"github.com/claude/tenrm/internal/program"
)

// ProgramInfo is the list view of a program.
type ProgramInfo struct {
	Name      string   `json:"name"`
	Info      string   `json:"info"`
	Exercises []string `json:"exercises"`
}

// PhaseInfo is one program week with its drop-set flag resolved.
type PhaseInfo struct {
	Phase      program.Phase `json:"phase"`
	HasDropSet bool          `json:"has_drop_set"`
}

// TableRequest carries the inputs of a table computation.
type TableRequest struct {
	Program     string             `json:"program"`
	Week        int                `json:"week"`
	Maxes       map[string]float64 `json:"maxes"`
	UseDefaults bool               `json:"use_defaults"`
}

// DataSource abstracts where programs and tables come from. Local (in
// process) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListPrograms(ctx context.Context) ([]ProgramInfo, error)
	GetPhase(ctx context.Context, name string, week int) (*PhaseInfo, error)
	ComputeTable(ctx context.Context, req TableRequest) (*load.Table, error)
}

// Local serves MCP requests from an in-process calculator.
type Local struct {
	calc *load.Calculator
}

// Compile-time check: *Local satisfies DataSource.
var _ DataSource = (*Local)(nil)

// NewLocal creates a Local data source.
func NewLocal(calc *load.Calculator) *Local {
	return &Local{calc: calc}
}

func (l *Local) ListPrograms(_ context.Context) ([]ProgramInfo, error) {
	catalog := l.calc.Catalog()
	names := catalog.ListPrograms()
	out := make([]ProgramInfo, 0, len(names))
	for _, name := range names {
		p, err := catalog.GetProgram(name)
		if err != nil {
			return nil, err
		}
		out = append(out, ProgramInfo{Name: p.Name, Info: p.Info, Exercises: p.ExerciseNames()})
	}
	return out, nil
}

func (l *Local) GetPhase(_ context.Context, name string, week int) (*PhaseInfo, error) {
	phase, err := l.calc.Catalog().GetPhase(name, week)
	if err != nil {
		return nil, err
	}
	return &PhaseInfo{Phase: phase, HasDropSet: phase.HasDropSet()}, nil
}

func (l *Local) ComputeTable(_ context.Context, req TableRequest) (*load.Table, error) {
	maxes := req.Maxes
	if req.UseDefaults {
		p, err := l.calc.Catalog().GetProgram(req.Program)
		if err != nil {
			return nil, err
		}
		maxes = load.DefaultMaxes(p)
		for name, v := range req.Maxes {
			maxes[name] = v
		}
	}
	return l.calc.ComputeTable(req.Program, req.Week, maxes)
}
