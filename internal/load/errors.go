package load

import "fmt"

// MissingInputError is returned when no 10RM was supplied for an exercise
// of the selected program.
type MissingInputError struct {
	Exercise string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing 10RM for %q", e.Exercise)
}

// InvalidValueError is returned for a 10RM that is not a finite positive
// number. Raw holds the unparsed text when the value came from a string.
type InvalidValueError struct {
	Exercise string
	Value    float64
	Raw      string
}

func (e *InvalidValueError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("invalid 10RM for %q: %q is not a number", e.Exercise, e.Raw)
	}
	return fmt.Sprintf("invalid 10RM for %q: %v must be a positive number", e.Exercise, e.Value)
}
