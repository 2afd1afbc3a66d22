package types

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrMalformedScope is returned for an empty or non UTF-8 scope label.
var ErrMalformedScope = errors.New("malformed scope")

// ScopeContext is the public label of a relying party, such as an asset
// ticker.
type ScopeContext string

// NewScopeContext validates label.
func NewScopeContext(label string) (ScopeContext, error) {
	s := ScopeContext(label)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate rejects empty and non UTF-8 labels.
func (s ScopeContext) Validate() error {
	if s == "" {
		return fmt.Errorf("%w: empty label", ErrMalformedScope)
	}
	if !utf8.ValidString(string(s)) {
		return fmt.Errorf("%w: label is not valid UTF-8", ErrMalformedScope)
	}
	return nil
}

// Bytes returns the UTF-8 encoding of the label.
func (s ScopeContext) Bytes() []byte { return []byte(s) }

// String returns the label.
func (s ScopeContext) String() string { return string(s) }
