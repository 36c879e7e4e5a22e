package program

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed programs.yaml
var builtinYAML []byte

// DefaultSessions labels the weekly sessions when a catalog file omits them.
var DefaultSessions = [SessionsPerWeek]string{"Mandag", "Onsdag", "Fredag"}

type catalogDoc struct {
	Sessions []string     `yaml:"sessions"`
	Programs []programDoc `yaml:"programs"`
}

type programDoc struct {
	Name      string     `yaml:"name"`
	Info      string     `yaml:"info"`
	Exercises []Exercise `yaml:"exercises"`
	Phases    []phaseDoc `yaml:"phases"`
}

type phaseDoc struct {
	Week        int       `yaml:"week"`
	Reps        string    `yaml:"reps"`
	Sets        Sets      `yaml:"sets"`
	Multipliers []float64 `yaml:"multipliers"`
	DropSet     bool      `yaml:"drop_set"`
	Note        string    `yaml:"note"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(builtinYAML))
	if err != nil {
		panic(fmt.Sprintf("built-in program catalog: %v", err))
	}
	return c
}

// Open returns the catalog at path, or the built-in catalog when path is
// empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a YAML catalog. Unknown keys are rejected.
func Load(r io.Reader) (*Catalog, error) {
	var doc catalogDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing catalog: empty document")
		}
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	sessions := DefaultSessions
	switch len(doc.Sessions) {
	case 0:
	case SessionsPerWeek:
		copy(sessions[:], doc.Sessions)
	default:
		return nil, fmt.Errorf("catalog: want %d session labels, got %d", SessionsPerWeek, len(doc.Sessions))
	}

	programs := make([]Program, 0, len(doc.Programs))
	for _, pd := range doc.Programs {
		p, err := pd.program()
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return New(sessions, programs...)
}

func (pd programDoc) program() (Program, error) {
	p := Program{Name: pd.Name, Info: pd.Info, Exercises: pd.Exercises}
	if len(pd.Phases) != Weeks {
		return Program{}, fmt.Errorf("program %q: want %d phases, got %d", pd.Name, Weeks, len(pd.Phases))
	}
	for _, ph := range pd.Phases {
		if ph.Week < 1 || ph.Week > Weeks {
			return Program{}, fmt.Errorf("program %q: week %d out of range", pd.Name, ph.Week)
		}
		if p.Phases[ph.Week-1].Week != 0 {
			return Program{}, fmt.Errorf("program %q: week %d defined twice", pd.Name, ph.Week)
		}
		if len(ph.Multipliers) != SessionsPerWeek {
			return Program{}, fmt.Errorf("program %q week %d: want %d multipliers, got %d",
				pd.Name, ph.Week, SessionsPerWeek, len(ph.Multipliers))
		}
		phase := Phase{
			Week:    ph.Week,
			Reps:    ph.Reps,
			Sets:    ph.Sets,
			DropSet: ph.DropSet,
			Note:    ph.Note,
		}
		copy(phase.Multipliers[:], ph.Multipliers)
		p.Phases[ph.Week-1] = phase
	}
	return p, nil
}
