package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/claude/tenrm/internal/load"
	"github.com/claude/tenrm/internal/program"
)

func newTestServer() *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(load.NewCalculator(program.Default(), log), log)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestListPrograms verifies the program list is returned in catalog order.
func TestListPrograms(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/api/v1/programs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []programSummary
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Grunnprogrammet" || got[1].Name != "Ekstrem Muskelvekst" {
		t.Errorf("programs = %+v", got)
	}
	if len(got[1].Exercises) != 4 || got[1].Exercises[1] != "Dips" {
		t.Errorf("Ekstrem exercises = %v", got[1].Exercises)
	}
}

// TestGetProgram verifies program detail includes default maxes and sessions.
func TestGetProgram(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/api/v1/programs/"+url.PathEscape("Ekstrem Muskelvekst"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got struct {
		Name      string `json:"name"`
		Exercises []struct {
			Name       string  `json:"name"`
			DefaultMax float64 `json:"default_max_kg"`
		} `json:"exercises"`
		Phases   []json.RawMessage `json:"phases"`
		Sessions []string          `json:"sessions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Name != "Ekstrem Muskelvekst" || len(got.Phases) != 6 {
		t.Errorf("program = %+v", got)
	}
	if got.Exercises[0].DefaultMax != 60 {
		t.Errorf("Knebøy default = %v, want 60", got.Exercises[0].DefaultMax)
	}
	if len(got.Sessions) != 3 || got.Sessions[0] != "Mandag" {
		t.Errorf("sessions = %v", got.Sessions)
	}
}

// TestGetProgramNotFound verifies unknown programs return 404.
func TestGetProgramNotFound(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/api/v1/programs/Nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// TestGetPhase verifies week lookup, including the drop-set flag.
func TestGetPhase(t *testing.T) {
	s := newTestServer()
	rec := do(t, s, http.MethodGet, "/api/v1/programs/Grunnprogrammet/weeks/4", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got struct {
		Phase struct {
			Week int    `json:"week"`
			Reps string `json:"reps"`
			Sets struct {
				Label string `json:"label"`
			} `json:"sets"`
		} `json:"phase"`
		HasDropSet bool `json:"has_drop_set"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Phase.Week != 4 || got.Phase.Reps != "5" || got.Phase.Sets.Label != "2" || !got.HasDropSet {
		t.Errorf("phase = %+v", got)
	}

	if rec := do(t, s, http.MethodGet, "/api/v1/programs/Grunnprogrammet/weeks/7", ""); rec.Code != http.StatusNotFound {
		t.Errorf("week 7 status = %d, want 404", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/api/v1/programs/Grunnprogrammet/weeks/two", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("week two status = %d, want 400", rec.Code)
	}
}

// TestComputeTable verifies the worked example through the HTTP API,
// including one-decimal weights.
func TestComputeTable(t *testing.T) {
	body := `{"program":"Grunnprogrammet","week":1,"use_defaults":true,"maxes":{"Skråbenk":"42,5"}}`
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/table", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	raw := rec.Body.String()
	if !strings.Contains(raw, `"weights_kg":[40.0,42.5,45.0]`) {
		t.Errorf("body missing Knebøy weights: %s", raw)
	}
	var table load.Table
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(table.Rows) != 8 || table.HasDropSet {
		t.Errorf("table = %+v", table)
	}
	// 42.5 x 0.65 = 27.625 -> 27.5
	if table.Rows[2].Weights[0] != 27.5 {
		t.Errorf("Skråbenk session 1 = %v, want 27.5", table.Rows[2].Weights[0])
	}
}

// TestComputeTableErrors verifies the error taxonomy maps to status codes.
func TestComputeTableErrors(t *testing.T) {
	s := newTestServer()
	cases := []struct {
		name string
		body string
		want int
	}{
		{"bad json", `{`, http.StatusBadRequest},
		{"unknown program", `{"program":"Nope","week":1,"maxes":{}}`, http.StatusNotFound},
		{"bad week", `{"program":"Grunnprogrammet","week":0,"use_defaults":true}`, http.StatusNotFound},
		{"missing", `{"program":"Ekstrem Muskelvekst","week":1,"maxes":{"Knebøy":60}}`, http.StatusUnprocessableEntity},
		{"negative", `{"program":"Grunnprogrammet","week":1,"use_defaults":true,"maxes":{"Roing":-4}}`, http.StatusUnprocessableEntity},
		{"text", `{"program":"Grunnprogrammet","week":1,"use_defaults":true,"maxes":{"Roing":"heavy"}}`, http.StatusUnprocessableEntity},
		{"object", `{"program":"Grunnprogrammet","week":1,"use_defaults":true,"maxes":{"Roing":{}}}`, http.StatusUnprocessableEntity},
		{"overflow", `{"program":"Ekstrem Muskelvekst","week":6,"use_defaults":true,"maxes":{"Knebøy":1.7e308}}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		rec := do(t, s, http.MethodPost, "/api/v1/table", tc.body)
		if rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d (%s)", tc.name, rec.Code, tc.want, rec.Body.String())
		}
	}
}

// TestComputeTableMissingNamesExercise verifies the response names the
// exercise without a 10RM.
func TestComputeTableMissingNamesExercise(t *testing.T) {
	body := `{"program":"Ekstrem Muskelvekst","week":2,"maxes":{"Knebøy":60,"Dips":40,"Arnoldpress":15}}`
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/table", body)
	var got map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got["exercise"] != "Roing" {
		t.Errorf("exercise = %q, want Roing", got["exercise"])
	}
}

// TestMCPMountRequiresKey verifies the /mcp mount is protected by the API key.
func TestMCPMountRequiresKey(t *testing.T) {
	s := newTestServer()
	s.SetMCP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}), "k")

	if rec := do(t, s, http.MethodPost, "/mcp", "{}"); rec.Code != http.StatusUnauthorized {
		t.Errorf("no key status = %d, want 401", rec.Code)
	}
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader("{}"))
	req.Header.Set("X-API-Key", "k")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Errorf("with key status = %d, want 202", rec.Code)
	}
}
