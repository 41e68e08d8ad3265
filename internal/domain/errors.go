package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every sentinel below wraps exactly one of these so that
// callers can classify with errors.Is without matching individual cases.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrPrerequisiteMissing = errors.New("prerequisite missing")
	ErrNotFound            = errors.New("not found")
	ErrUnavailable         = errors.New("unavailable")
	ErrConflict            = errors.New("conflict")
)

var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrProfileNotFound = fmt.Errorf("profile %w", ErrNotFound)
	ErrIntentNotFound  = fmt.Errorf("intent %w", ErrNotFound)
	ErrMatchNotFound   = fmt.Errorf("match %w", ErrNotFound)

	ErrCannotSwipeSelf  = fmt.Errorf("%w: cannot swipe yourself", ErrInvalidArgument)
	ErrInvalidDirection = fmt.Errorf("%w: direction must be like or pass", ErrInvalidArgument)

	// ErrUserRequired is returned when a profile or intent write arrives
	// before the owning user row exists.
	ErrUserRequired = fmt.Errorf("%w: user record must exist first", ErrPrerequisiteMissing)

	// ErrNotParticipant is returned when a caller operates on a match they
	// are not part of.
	ErrNotParticipant = fmt.Errorf("%w: not a participant of this match", ErrInvalidArgument)

	ErrInvalidCode = fmt.Errorf("%w: invalid or expired code", ErrInvalidArgument)
)
