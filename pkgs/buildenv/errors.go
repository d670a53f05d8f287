package buildenv

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingVar indicates a required environment variable is not set.
	ErrMissingVar = errors.New("environment variable not set")

	// ErrInvalidText indicates a value is not valid UTF-8.
	ErrInvalidText = errors.New("not valid UTF-8")

	// ErrUnsupportedProfile indicates PROFILE is neither "release" nor "debug".
	ErrUnsupportedProfile = errors.New("profile is not supported by this build script")

	// ErrInvalidVersion indicates CARGO_PKG_VERSION is not a semantic version.
	ErrInvalidVersion = errors.New("invalid package version")
)

// Error records the operation and variable behind a failure.
type Error struct {
	Op  string // Operation that failed, e.g. "output directory"
	Var string // Environment variable or path involved, if any
	Err error  // Underlying error
}

func (e *Error) Error() string {
	if e.Var != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Var, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
