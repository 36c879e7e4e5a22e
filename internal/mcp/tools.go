package mcp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/claude/tenrm/internal/load"
	"github.com/claude/tenrm/internal/program"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListPrograms = mcp.NewTool("list_programs",
	mcp.WithDescription("List all training programs with their description and ordered exercise list. Each exercise needs a 10RM value (kg) when computing a load table."),
)

var toolGetPhase = mcp.NewTool("get_phase",
	mcp.WithDescription("Get one week of a program: reps, set scheme, the three session multipliers (fractions of 10RM) and whether the week ends with a drop set."),
	mcp.WithString("program", mcp.Required(), mcp.Description("Program name, exactly as returned by list_programs")),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Week number 1-6"), mcp.Min(1), mcp.Max(6)),
)

var toolComputeLoadTable = mcp.NewTool("compute_load_table",
	mcp.WithDescription("Compute the weekly load table for a program week. Returns one row per exercise with sets, reps and the weight (kg) for each of the three sessions, plus drop-set advisories."),
	mcp.WithString("program", mcp.Required(), mcp.Description("Program name, exactly as returned by list_programs")),
	mcp.WithNumber("week", mcp.Required(), mcp.Description("Week number 1-6"), mcp.Min(1), mcp.Max(6)),
	mcp.WithObject("maxes", mcp.Description("10RM per exercise in kg, e.g. {\"Knebøy\": 60, \"Roing\": 40}. Every exercise of the program is required unless use_defaults is set.")),
	mcp.WithBoolean("use_defaults", mcp.Description("Fill exercises missing from maxes with the program's suggested starting values. Defaults to false.")),
)

// --- Tool handlers ---

func (h *handlers) listPrograms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	programs, err := h.ds.ListPrograms(ctx)
	if err != nil {
		h.log.Error("mcp list_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(programs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPhase(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("program")
	if err != nil {
		return mcp.NewToolResultError("program parameter is required"), nil
	}
	week, err := requireWeek(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	phase, err := h.ds.GetPhase(ctx, name, week)
	if err != nil {
		return h.toolError("get_phase", err), nil
	}

	result, err := mcp.NewToolResultJSON(phase)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) computeLoadTable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("program")
	if err != nil {
		return mcp.NewToolResultError("program parameter is required"), nil
	}
	week, err := requireWeek(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	maxes, err := parseMaxes(req.GetArguments()["maxes"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	table, err := h.ds.ComputeTable(ctx, TableRequest{
		Program:     name,
		Week:        week,
		Maxes:       maxes,
		UseDefaults: req.GetBool("use_defaults", false),
	})
	if err != nil {
		return h.toolError("compute_load_table", err), nil
	}

	result, err := mcp.NewToolResultJSON(table)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// toolError turns input errors into tool results the model can act on and
// logs anything else.
func (h *handlers) toolError(tool string, err error) *mcp.CallToolResult {
	var (
		notFound *program.NotFoundError
		missing  *load.MissingInputError
		invalid  *load.InvalidValueError
		apiErr   *APIError
	)
	switch {
	case errors.As(err, &notFound), IsNotFound(err):
		return mcp.NewToolResultError(err.Error() + " (call list_programs for valid names; weeks are 1-6)")
	case errors.As(err, &missing), errors.As(err, &invalid), errors.As(err, &apiErr):
		return mcp.NewToolResultError(err.Error())
	default:
		h.log.Error("mcp "+tool, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error())
	}
}

// requireWeek reads the week argument, rejecting fractional numbers
// instead of truncating them.
func requireWeek(req mcp.CallToolRequest) (int, error) {
	w, err := req.RequireFloat("week")
	if err != nil {
		return 0, errors.New("week parameter is required")
	}
	if w != math.Trunc(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("week must be a whole number 1-6, got %v", w)
	}
	return int(w), nil
}

// parseMaxes converts the maxes argument. Values may be numbers or numeric
// strings.
func parseMaxes(arg any) (map[string]float64, error) {
	maxes := make(map[string]float64)
	if arg == nil {
		return maxes, nil
	}
	obj, ok := arg.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("maxes must be an object of exercise name to kg")
	}
	for name, v := range obj {
		switch x := v.(type) {
		case float64:
			maxes[name] = x
		case int:
			maxes[name] = float64(x)
		case string:
			f, err := load.ParseMax(name, x)
			if err != nil {
				return nil, err
			}
			maxes[name] = f
		default:
			return nil, &load.InvalidValueError{Exercise: name, Raw: fmt.Sprint(v)}
		}
	}
	return maxes, nil
}
