package render

import (
	"strings"
	"testing"

	"github.com/claude/tenrm/internal/load"
	"github.com/claude/tenrm/internal/program"
)

func computeTable(t *testing.T, name string, week int) *load.Table {
	t.Helper()
	catalog := program.Default()
	p, err := catalog.GetProgram(name)
	if err != nil {
		t.Fatal(err)
	}
	table, err := load.NewCalculator(catalog, nil).ComputeTable(name, week, load.DefaultMaxes(p))
	if err != nil {
		t.Fatal(err)
	}
	return table
}

// TestGridContents verifies headers, exercises and formatted weights appear.
func TestGridContents(t *testing.T) {
	out := Grid(computeTable(t, "Grunnprogrammet", 1))
	for _, want := range []string{"Øvelse", "Mandag", "Fredag", "Knebøy", "Tricepspress", "42.5 kg", "10.0 kg"} {
		if !strings.Contains(out, want) {
			t.Errorf("grid missing %q:\n%s", want, out)
		}
	}
}

// TestGridRowOrder verifies rows keep the program's exercise order.
func TestGridRowOrder(t *testing.T) {
	out := Grid(computeTable(t, "Ekstrem Muskelvekst", 2))
	last := -1
	for _, name := range []string{"Knebøy", "Dips", "Roing", "Arnoldpress"} {
		i := strings.Index(out, name)
		if i <= last {
			t.Fatalf("%q out of order in:\n%s", name, out)
		}
		last = i
	}
}

// TestTableAdvisories verifies drop-set banners appear only in drop-set weeks.
func TestTableAdvisories(t *testing.T) {
	if out := Table(computeTable(t, "Grunnprogrammet", 2)); strings.Contains(out, "Droppsett") {
		t.Errorf("week 2 shows drop-set advisory:\n%s", out)
	}
	out := Table(computeTable(t, "Ekstrem Muskelvekst", 6))
	for _, want := range []string{"Droppsett", "Ekstrem-modus", "4 + 1 (dropp)", "Uke 6 - 5 Reps Fasen", Footer} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
