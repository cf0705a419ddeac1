package domain

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"

	apperrors "github.com/louisbranch/yogastudio/internal/platform/errors"
)

const (
	// MinTextLength is the shortest accepted BoundedString, in UTF-16 code units.
	MinTextLength = 1
	// MaxTextLength is the longest accepted BoundedString, in UTF-16 code units.
	MaxTextLength = 50
)

var (
	// ErrInvalidLength indicates text outside the BoundedString length range.
	ErrInvalidLength = apperrors.New(apperrors.CodeInvalidLength, "string must be between 1 and 50 characters")
	// ErrPersonConstructionFailed indicates an invalid first or last name.
	ErrPersonConstructionFailed = apperrors.New(apperrors.CodePersonConstructionFailed, "couldn't create person from names")
)

// BoundedString is text of 1 to 50 characters.
type BoundedString struct {
	value string
}

// NewBoundedString validates raw as a BoundedString. The content is kept
// exactly as given.
func NewBoundedString(raw string) (BoundedString, error) {
	if n := textLength(raw); n < MinTextLength || n > MaxTextLength {
		return BoundedString{}, apperrors.WithMetadata(
			apperrors.CodeInvalidLength,
			fmt.Sprintf("string must be between %d and %d characters, got %d", MinTextLength, MaxTextLength, n),
			map[string]string{
				"Min":    strconv.Itoa(MinTextLength),
				"Max":    strconv.Itoa(MaxTextLength),
				"Length": strconv.Itoa(n),
			},
		)
	}
	return BoundedString{value: raw}, nil
}

// textLength counts UTF-16 code units, so characters outside the Basic
// Multilingual Plane count twice.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		if size := utf16.RuneLen(r); size > 0 {
			n += size
		} else {
			n++
		}
	}
	return n
}

// String returns the validated text.
func (s BoundedString) String() string {
	return s.value
}

// Person is a validated first and last name.
type Person struct {
	firstName BoundedString
	lastName  BoundedString
}

// NewPerson validates both names and builds a Person. Both names are checked
// before deciding; any failure is reported as ErrPersonConstructionFailed
// wrapping the individual causes.
func NewPerson(firstName, lastName string) (Person, error) {
	first, firstErr := NewBoundedString(firstName)
	last, lastErr := NewBoundedString(lastName)
	if err := errors.Join(firstErr, lastErr); err != nil {
		return Person{}, apperrors.Wrap(apperrors.CodePersonConstructionFailed, "couldn't create person from names", err)
	}
	return Person{firstName: first, lastName: last}, nil
}

// FirstName returns the person's first name.
func (p Person) FirstName() BoundedString {
	return p.firstName
}

// LastName returns the person's last name.
func (p Person) LastName() BoundedString {
	return p.lastName
}

// String returns "First Last".
func (p Person) String() string {
	return p.firstName.value + " " + p.lastName.value
}
