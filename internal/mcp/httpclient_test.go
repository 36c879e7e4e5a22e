package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/tenrm/internal/load"
	"github.com/claude/tenrm/internal/program"
	"github.com/claude/tenrm/internal/server"
)

// newAPIServer runs the real REST API so the client is checked against the
// routes it targets.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(server.New(load.NewCalculator(program.Default(), log), log))
	t.Cleanup(ts.Close)
	return ts
}

// TestHTTPClientListPrograms verifies the client decodes the program list.
func TestHTTPClientListPrograms(t *testing.T) {
	client := NewHTTPClient(newAPIServer(t).URL + "/")
	programs, err := client.ListPrograms(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(programs) != 2 || programs[1].Name != "Ekstrem Muskelvekst" {
		t.Errorf("programs = %+v", programs)
	}
}

// TestHTTPClientGetPhase verifies program names with spaces are escaped and
// the set scheme survives the round trip.
func TestHTTPClientGetPhase(t *testing.T) {
	client := NewHTTPClient(newAPIServer(t).URL)
	phase, err := client.GetPhase(context.Background(), "Ekstrem Muskelvekst", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if phase.Phase.Sets != program.FixedPlusDrop(4, 1) || !phase.HasDropSet {
		t.Errorf("phase = %+v", phase)
	}

	_, err = client.GetPhase(context.Background(), "Ekstrem Muskelvekst", 0)
	if !IsNotFound(err) {
		t.Errorf("week 0 error = %v, want not found", err)
	}
}

// TestHTTPClientComputeTable verifies table computation over HTTP and that
// validation errors carry the exercise name.
func TestHTTPClientComputeTable(t *testing.T) {
	client := NewHTTPClient(newAPIServer(t).URL)
	table, err := client.ComputeTable(context.Background(), TableRequest{
		Program:     "Grunnprogrammet",
		Week:        1,
		UseDefaults: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := [3]load.Kg{40, 42.5, 45}; table.Rows[0].Weights != want {
		t.Errorf("Knebøy = %v, want %v", table.Rows[0].Weights, want)
	}

	_, err = client.ComputeTable(context.Background(), TableRequest{
		Program: "Grunnprogrammet",
		Week:    1,
		Maxes:   map[string]float64{"Knebøy": 60},
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity || apiErr.Exercise != "Markløft m/strake" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

// TestHTTPClientUnreachable verifies transport errors are returned, not
// mistaken for API errors.
func TestHTTPClientUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewHTTPClient(url).ListPrograms(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("got APIError %v for a closed server", apiErr)
	}
}
