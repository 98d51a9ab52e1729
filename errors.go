package toolspec

import "errors"

var (
	// ErrInvalidName is returned when a function name is too long or
	// contains disallowed characters. Use errors.As with *NameError for details.
	ErrInvalidName = errors.New("toolspec: invalid function name")

	// ErrDuplicateName is returned when a definitions file declares the
	// same function name twice.
	ErrDuplicateName = errors.New("toolspec: duplicate function name")

	// ErrNilDefinition is returned when a definitions file contains an empty entry.
	ErrNilDefinition = errors.New("toolspec: empty definition")
)
