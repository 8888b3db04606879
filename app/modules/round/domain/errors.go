package rounddomain

import (
	"errors"
	"fmt"
)

// ErrCourseDataMissing is returned when a course has no usable rating or slope.
// Stats are never computed against a defaulted course.
var ErrCourseDataMissing = errors.New("course rating or slope missing")

// ValidationError reports malformed input before anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

var (
	// ErrRoundExists is returned when the player already has a round in the tournament.
	ErrRoundExists = errors.New("player already has a round in this tournament")
	// ErrTournamentNotFound is returned when a round references an unknown tournament.
	ErrTournamentNotFound = errors.New("tournament not found")
	// ErrMemberNotFound is returned when a round is entered for an unregistered player.
	ErrMemberNotFound = errors.New("member not found")
	// ErrGreenieNotFound is returned when a greenie does not exist.
	ErrGreenieNotFound = errors.New("greenie not found")
)
