package program

import "fmt"

// NotFoundError is returned when a program or week does not exist in the
// catalog.
type NotFoundError struct {
	Kind    string // "program" or "week"
	Program string
	Week    int
}

func (e *NotFoundError) Error() string {
	if e.Kind == "week" {
		return fmt.Sprintf("week %d not found in program %q", e.Week, e.Program)
	}
	return fmt.Sprintf("program %q not found", e.Program)
}
