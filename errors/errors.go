package errors

import "fmt"

// ProfileError wraps a specific error with context about which profile
// record it occurred in.
type ProfileError struct {
	Index int
	Name  string
	Err   error
}

func (e *ProfileError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("profile error at record %d (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("profile error at record %d: %v", e.Index, e.Err)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

// Define specific error types for better error handling
var (
	ErrInvalidID     = fmt.Errorf("invalid technician id")
	ErrMissingName   = fmt.Errorf("missing technician name")
	ErrInvalidZone   = fmt.Errorf("invalid zone (expected 5-digit zip)")
	ErrEmptyProfiles = fmt.Errorf("no technician profiles in input")
)
