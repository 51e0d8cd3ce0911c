package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Shift bounds. A shift of 0 or 26 would be the identity.
const (
	MinShift     = 1
	MaxShift     = 25
	DefaultShift = 13
)

var (
	// ErrShiftOutOfRange is returned for shifts outside [MinShift, MaxShift].
	ErrShiftOutOfRange = errors.New("shift out of range")
	// ErrShiftNotNumber is returned when shift input is not an integer.
	ErrShiftNotNumber = errors.New("shift is not a number")
	// ErrEmptyInput is returned when encode/decode receives blank text.
	ErrEmptyInput = errors.New("empty input")
)

// ShiftValue is a rotation amount that is always within [MinShift, MaxShift].
// The zero value is not valid; obtain one through NewShift or ParseShift.
type ShiftValue struct {
	n int
}

// NewShift validates n.
func NewShift(n int) (ShiftValue, error) {
	if n < MinShift || n > MaxShift {
		return ShiftValue{}, fmt.Errorf("%w: %d (valid range %d-%d)", ErrShiftOutOfRange, n, MinShift, MaxShift)
	}
	return ShiftValue{n: n}, nil
}

// MustShift is NewShift for constants; it panics on an invalid value.
func MustShift(n int) ShiftValue {
	s, err := NewShift(n)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseShift parses operator input such as " 7\n".
func ParseShift(input string) (ShiftValue, error) {
	trimmed := strings.TrimSpace(input)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return ShiftValue{}, fmt.Errorf("%w: %q", ErrShiftNotNumber, trimmed)
	}
	return NewShift(n)
}

// Int returns the raw rotation amount.
func (s ShiftValue) Int() int {
	return s.n
}

// IsZero reports whether s was never validated.
func (s ShiftValue) IsZero() bool {
	return s.n == 0
}

// String renders the shift as ROT<n>.
func (s ShiftValue) String() string {
	return "ROT" + strconv.Itoa(s.n)
}

// Session holds the operator's current shift. Each process has one; it is
// passed explicitly to whatever handles menu choices.
type Session struct {
	shift ShiftValue
}

// NewSession starts a session at initial, falling back to DefaultShift when
// initial was never validated.
func NewSession(initial ShiftValue) *Session {
	if initial.IsZero() {
		initial = MustShift(DefaultShift)
	}
	return &Session{shift: initial}
}

// Shift returns the current shift.
func (s *Session) Shift() ShiftValue {
	return s.shift
}

// SetShift replaces the current shift. On error the previous value is kept.
func (s *Session) SetShift(candidate int) (ShiftValue, error) {
	next, err := NewShift(candidate)
	if err != nil {
		return s.shift, err
	}
	s.shift = next
	return next, nil
}

// SetShiftFromInput parses then applies operator input.
func (s *Session) SetShiftFromInput(input string) (ShiftValue, error) {
	next, err := ParseShift(input)
	if err != nil {
		return s.shift, err
	}
	s.shift = next
	return next, nil
}

// Request builds a CipherRequest for text at the current shift.
func (s *Session) Request(text string, dir Direction) CipherRequest {
	return CipherRequest{Text: text, Shift: s.shift, Direction: dir}
}
