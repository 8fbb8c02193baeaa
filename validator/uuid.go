package validator

import "github.com/scbunn/neomodel/types"

// UUID is the identity field validator. It performs no validation;
// instead it generates a stable identifier on the first read of an
// unset field. The node's property store caches the generated value,
// so generation happens at most once per instance unless the field is
// explicitly overwritten first.
type UUID struct {
	FieldName string

	// New produces a fresh identifier. Defaults to a random UUID v4
	// rendered in its canonical 36-character form.
	New func() any
}

// NewUUID returns an unbound UUID validator with the default generator.
func NewUUID() UUID {
	return UUID{}
}

// Name returns the bound field name.
func (v UUID) Name() string { return v.FieldName }

// Bind returns a copy bound to name.
func (v UUID) Bind(name string) Validator {
	v.FieldName = name
	return v
}

// Validate always succeeds; identity values are trusted as assigned.
func (v UUID) Validate(value any) error { return nil }

// Generate invokes the configured generator, or the default UUID v4
// generator when none was supplied.
func (v UUID) Generate() any {
	if v.New != nil {
		return v.New()
	}
	return types.NewID().String()
}
