package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/claude/tenrm/internal/load"
	"github.com/claude/tenrm/internal/program"
	"github.com/claude/tenrm/internal/tui"
)

func main() {
	maxes := load.MaxFlag{}
	programName := flag.String("program", "", "program to show first")
	flag.Var(maxes, "max", "10RM for one exercise of -program as Exercise=kg, repeatable")
	catalogPath := flag.String("catalog", "", "program catalog YAML (built-in programs when empty)")
	flag.Parse()

	catalog, err := program.Open(*catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	name := *programName
	if name == "" {
		name = catalog.ListPrograms()[0]
	}
	if _, err := catalog.GetProgram(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := tui.New(load.NewCalculator(catalog, nil), map[string]map[string]float64{name: maxes}).Select(name)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
