package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/claude/tenrm/internal/load"
	"github.com/claude/tenrm/internal/program"
	"github.com/go-chi/chi/v5"
)

// programSummary is the list view of a program.
type programSummary struct {
	Name      string   `json:"name"`
	Info      string   `json:"info"`
	Exercises []string `json:"exercises"`
}

// programDetail adds the catalog's session labels to a program.
type programDetail struct {
	program.Program
	Sessions [program.SessionsPerWeek]string `json:"sessions"`
}

// tableRequest is the body of POST /api/v1/table. Maxes values may be JSON
// numbers or strings such as "22,5".
type tableRequest struct {
	Program     string                     `json:"program"`
	Week        int                        `json:"week"`
	Maxes       map[string]json.RawMessage `json:"maxes"`
	UseDefaults bool                       `json:"use_defaults"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	catalog := s.calc.Catalog()
	names := catalog.ListPrograms()
	out := make([]programSummary, 0, len(names))
	for _, name := range names {
		p, err := catalog.GetProgram(name)
		if err != nil {
			s.writeError(w, err)
			return
		}
		out = append(out, programSummary{Name: p.Name, Info: p.Info, Exercises: p.ExerciseNames()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	catalog := s.calc.Catalog()
	p, err := catalog.GetProgram(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, programDetail{Program: p, Sessions: catalog.Sessions()})
}

func (s *Server) handleGetPhase(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "week must be an integer"})
		return
	}
	phase, err := s.calc.Catalog().GetPhase(chi.URLParam(r, "name"), week)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"phase":        phase,
		"has_drop_set": phase.HasDropSet(),
	})
}

func (s *Server) handleComputeTable(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	maxes := make(map[string]float64, len(req.Maxes))
	if req.UseDefaults {
		p, err := s.calc.Catalog().GetProgram(req.Program)
		if err != nil {
			s.writeError(w, err)
			return
		}
		maxes = load.DefaultMaxes(p)
	}
	for name, raw := range req.Maxes {
		v, err := decodeMax(name, raw)
		if err != nil {
			s.writeError(w, err)
			return
		}
		maxes[name] = v
	}

	table, err := s.calc.ComputeTable(req.Program, req.Week, maxes)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// decodeMax accepts a JSON number or a numeric string.
func decodeMax(exercise string, raw json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return load.ParseMax(exercise, str)
	}
	return 0, &load.InvalidValueError{Exercise: exercise, Raw: string(raw)}
}

// writeError maps domain errors to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		notFound *program.NotFoundError
		missing  *load.MissingInputError
		invalid  *load.InvalidValueError
	)
	switch {
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &missing):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error(), "exercise": missing.Exercise})
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error(), "exercise": invalid.Exercise})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
