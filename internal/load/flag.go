package load

import (
	"fmt"
	"sort"
	"strings"
)

// MaxFlag collects repeated -max "Exercise=kg" command line values. It
// implements flag.Value.
type MaxFlag map[string]float64

func (f MaxFlag) String() string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%g", name, f[name])
	}
	return strings.Join(parts, ",")
}

func (f MaxFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("expected Exercise=kg, got %q", s)
	}
	v, err := ParseMax(name, value)
	if err != nil {
		return err
	}
	f[name] = v
	return nil
}
