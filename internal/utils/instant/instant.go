// Package instant encodes and decodes optional timestamps to a canonical,
// offset-preserving text form used both on the wire and in storage.
package instant

import (
	"fmt"
	"time"

	"github.com/SscSPs/procurement_app/internal/apperrors"
)

// Format is the canonical text layout. RFC3339Nano keeps sub-second precision
// and writes the instant's own offset, so parsing yields the same instant and zone offset.
const Format = time.RFC3339Nano

// Encode returns the canonical text form of t.
func Encode(t time.Time) string {
	return t.Format(Format)
}

// Decode parses canonical text. Fractional seconds are optional.
func Decode(text string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid RFC 3339 timestamp %q: %w", apperrors.ErrValidation, text, err)
	}
	return t, nil
}

// EncodeOptional returns nil for an absent instant.
func EncodeOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Encode(*t)
	return &s
}

// DecodeOptional returns nil for absent text. Malformed or empty text is an error.
func DecodeOptional(text *string) (*time.Time, error) {
	if text == nil {
		return nil, nil
	}
	t, err := Decode(*text)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Valid reports whether text decodes.
func Valid(text string) bool {
	_, err := time.Parse(time.RFC3339, text)
	return err == nil
}
