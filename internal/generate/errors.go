package generate

import "fmt"

// Error represents an error during article generation.
type Error struct {
	Keyword string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error for %q: %s: %v", e.Keyword, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error for %q: %s", e.Keyword, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
