package notation

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTimeCheckpoint is returned when a statement appears before any time
	// has been given, either as a bare HHMM line or with "<< HHMM".
	ErrNoTimeCheckpoint = errors.New("no time checkpoint has been given")
	// ErrUnknownStatement is returned for statements outside the notation.
	ErrUnknownStatement = errors.New("unknown statement")
	// ErrInvalidArgument is returned when a known statement has malformed arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)

func invalidArg(statement, format string, args ...any) error {
	return fmt.Errorf("%w to %s: %s", ErrInvalidArgument, statement, fmt.Sprintf(format, args...))
}
