package domain

import (
	"fmt"
	"strings"
)

// AlphabetSize is the number of letters each case alphabet rotates over.
const AlphabetSize = 26

// Direction selects forward (encode) or inverse (decode) rotation.
type Direction string

const (
	Encode Direction = "ENCODE"
	Decode Direction = "DECODE"
)

// ParseDirection accepts ENCODE/DECODE in any case.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(raw))) {
	case Encode:
		return Encode, nil
	case Decode:
		return Decode, nil
	default:
		return "", fmt.Errorf("unknown operation %q", raw)
	}
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	if d == Decode {
		return Encode
	}
	return Decode
}

// CipherRequest is a single transform invocation.
type CipherRequest struct {
	Text      string
	Shift     ShiftValue
	Direction Direction
}

// Apply runs the request through Transform.
func (r CipherRequest) Apply() string {
	return Transform(r.Text, r.Shift.Int(), r.Direction)
}

// Transform rotates every ASCII letter of text by shift positions within its
// own case alphabet (backwards for Decode). Every other byte is copied as is,
// so multi-byte UTF-8 sequences and invalid bytes survive untouched.
// The caller guarantees shift is in [MinShift, MaxShift].
func Transform(text string, shift int, dir Direction) string {
	if text == "" {
		return ""
	}
	r := shift
	if dir == Decode {
		r = -shift
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + rotate(c-'a', r)
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + rotate(c-'A', r)
		default:
			out[i] = c
		}
	}
	return string(out)
}

// EncodeText is Transform in the Encode direction.
func EncodeText(text string, shift int) string {
	return Transform(text, shift, Encode)
}

// DecodeText is Transform in the Decode direction.
func DecodeText(text string, shift int) string {
	return Transform(text, shift, Decode)
}

// rotate returns (i + r) mod 26, always in [0, 25].
func rotate(i byte, r int) byte {
	return byte(((int(i)+r)%AlphabetSize + AlphabetSize) % AlphabetSize)
}
