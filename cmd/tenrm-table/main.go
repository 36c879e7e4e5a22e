package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/claude/tenrm/internal/load"
	"github.com/claude/tenrm/internal/program"
	"github.com/claude/tenrm/internal/render"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	maxes := load.MaxFlag{}
	programName := flag.String("program", "", "program name (first program when empty)")
	week := flag.Int("week", 1, "week number 1-6")
	flag.Var(maxes, "max", "10RM for one exercise as Exercise=kg, repeatable")
	useDefaults := flag.Bool("defaults", false, "fill exercises without -max from the program's suggested values")
	asJSON := flag.Bool("json", false, "print the table as JSON")
	catalogPath := flag.String("catalog", "", "program catalog YAML (built-in programs when empty)")
	list := flag.Bool("list", false, "list programs and their exercises, then exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("tenrm-table", Version)
		return
	}

	catalog, err := program.Open(*catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	if *list {
		printPrograms(catalog)
		return
	}

	name := *programName
	if name == "" {
		name = catalog.ListPrograms()[0]
	}

	if *useDefaults {
		p, err := catalog.GetProgram(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for ex, v := range load.DefaultMaxes(p) {
			if _, ok := maxes[ex]; !ok {
				maxes[ex] = v
			}
		}
	}

	table, err := load.NewCalculator(catalog, nil).ComputeTable(name, *week, maxes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var missing *load.MissingInputError
		if errors.As(err, &missing) {
			fmt.Fprintln(os.Stderr, "Pass -max \"Exercise=kg\" for every exercise or use -defaults.")
		}
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(table); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(render.Table(table))
}

func printPrograms(catalog *program.Catalog) {
	for _, name := range catalog.ListPrograms() {
		p, err := catalog.GetProgram(name)
		if err != nil {
			continue
		}
		fmt.Printf("%s\n  %s\n", p.Name, p.Info)
		for _, e := range p.Exercises {
			fmt.Printf("  - %s (forslag %s)\n", e.Name, load.Kg(e.DefaultMax))
		}
	}
}
