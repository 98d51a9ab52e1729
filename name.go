package toolspec

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxNameLength is the longest function name tool-calling APIs accept.
const MaxNameLength = 64

// ValidateName reports whether name is a valid function name: at most
// MaxNameLength characters, each one of a-z, A-Z, 0-9, '-' or '_'.
// It returns a *NameError describing every violation.
func ValidateName(name string) error {
	var invalid []rune
	length := 0
	for _, r := range name {
		length++
		if !isNameChar(r) {
			invalid = append(invalid, r)
		}
	}
	if length <= MaxNameLength && len(invalid) == 0 {
		return nil
	}
	return &NameError{Name: name, InvalidChars: invalid, Length: length}
}

func isNameChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}

// NameError describes an invalid function name.
type NameError struct {
	Name string
	// InvalidChars holds each disallowed character in order of occurrence,
	// repeats included.
	InvalidChars []rune
	// Length is the name's length in characters.
	Length int
}

// TooLong reports whether the name exceeds MaxNameLength.
func (e *NameError) TooLong() bool {
	return e.Length > MaxNameLength
}

func (e *NameError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "toolspec: invalid function name %q: ", e.Name)
	if len(e.InvalidChars) > 0 {
		quoted := make([]string, len(e.InvalidChars))
		for i, r := range e.InvalidChars {
			quoted[i] = strconv.QuoteRune(r)
		}
		fmt.Fprintf(&b, "contains invalid characters: %s; ", strings.Join(quoted, ", "))
	}
	if e.TooLong() {
		fmt.Fprintf(&b, "name is too long (%d > %d); ", e.Length, MaxNameLength)
	}
	fmt.Fprintf(&b, "must contain only a-z, A-Z, 0-9, underscores and dashes, with a maximum length of %d", MaxNameLength)
	return b.String()
}

// Unwrap returns ErrInvalidName.
func (e *NameError) Unwrap() error {
	return ErrInvalidName
}
