package validator

import (
	"fmt"
	"unicode/utf8"

	"github.com/scbunn/neomodel/types"
)

// String validates that a value is a string within optional length
// bounds. Lengths are measured in runes so multi-byte text is bounded
// the way users count it.
type String struct {
	FieldName string

	maxLength int
	minLength int
	hasMax    bool
	hasMin    bool
}

// StringOption configures a String validator at construction.
type StringOption func(*String)

// MaxLength bounds the string to at most n runes.
func MaxLength(n int) StringOption {
	return func(s *String) {
		s.maxLength = n
		s.hasMax = true
	}
}

// MinLength bounds the string to at least n runes.
func MinLength(n int) StringOption {
	return func(s *String) {
		s.minLength = n
		s.hasMin = true
	}
}

// NewString returns an unbound String validator. Construction fails
// with VALIDATION_BAD_RULE if a negative bound is supplied.
func NewString(opts ...StringOption) (String, error) {
	var s String
	for _, opt := range opts {
		opt(&s)
	}
	if s.hasMax && s.maxLength < 0 {
		return String{}, types.NewError(types.VALIDATION_BAD_RULE,
			fmt.Sprintf("max_length must be a non-negative integer; got %d", s.maxLength))
	}
	if s.hasMin && s.minLength < 0 {
		return String{}, types.NewError(types.VALIDATION_BAD_RULE,
			fmt.Sprintf("min_length must be a non-negative integer; got %d", s.minLength))
	}
	return s, nil
}

// MustString is like NewString but panics on an invalid bound. Intended
// for field declarations in package-level model definitions.
func MustString(opts ...StringOption) String {
	s, err := NewString(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the bound field name.
func (v String) Name() string { return v.FieldName }

// Bind returns a copy bound to name.
func (v String) Bind(name string) Validator {
	v.FieldName = name
	return v
}

// MaxLen returns the configured maximum length and whether one is set.
func (v String) MaxLen() (int, bool) { return v.maxLength, v.hasMax }

// MinLen returns the configured minimum length and whether one is set.
func (v String) MinLen() (int, bool) { return v.minLength, v.hasMin }

// Validate checks that value is a string and within the configured
// length bounds. Boundary lengths equal to either bound pass.
func (v String) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return typeMismatch("expected %v to be a string; got %T instead", value, value)
	}

	length := utf8.RuneCountInString(s)
	if v.hasMax && length > v.maxLength {
		return typeMismatch("%q (%d) is longer than max length %d", s, length, v.maxLength)
	}
	if v.hasMin && length < v.minLength {
		return typeMismatch("%q (%d) is shorter than min length %d", s, length, v.minLength)
	}
	return nil
}
