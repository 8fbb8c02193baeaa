// Package validator provides typed field validators for graph node models.
// A validator is a named rule bound to a model field; it carries no
// per-instance state and is shared by every node of the owning type.
// Registration binds the field name, not construction.
package validator

import (
	"fmt"

	"github.com/scbunn/neomodel/types"
)

// Validator is the contract for attribute-level validation.
// Validate returns a VALIDATION_TYPE_MISMATCH error when the value does
// not satisfy the rule; a nil return means the value may be stored.
type Validator interface {
	// Name returns the field name this validator is bound to, or ""
	// if it has not been bound yet.
	Name() string

	// Bind returns a copy of the validator bound to the given field
	// name. Model registration calls this once per declared field.
	Bind(name string) Validator

	// Validate checks value against the rule. Implementations must be
	// side-effect free.
	Validate(value any) error
}

// Generator is implemented by validators that produce a value instead
// of requiring one, such as the identity (UUID) field. The owning node
// invokes Generate on the first read of an unset field and caches the
// result in its own storage; Generate itself is never memoized.
type Generator interface {
	Generate() any
}

func typeMismatch(format string, args ...any) error {
	return types.NewError(types.VALIDATION_TYPE_MISMATCH, fmt.Sprintf(format, args...))
}

// asInt64 normalizes Go integer kinds to int64. The bolt protocol
// returns integers as int64, while application code usually assigns
// plain ints; both must satisfy the Integer rule.
func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	}
	return 0, false
}
