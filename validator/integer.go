package validator

// Integer validates that a value is an integer, optionally non-negative.
//
// Positive is a historical name: it accepts zero, so the rule is really
// ">= 0". Callers depend on the zero-passes boundary, so it stays.
type Integer struct {
	FieldName string
	Positive  bool
}

// NewInteger returns an unbound Integer validator.
func NewInteger(positive bool) Integer {
	return Integer{Positive: positive}
}

// Name returns the bound field name.
func (v Integer) Name() string { return v.FieldName }

// Bind returns a copy bound to name.
func (v Integer) Bind(name string) Validator {
	v.FieldName = name
	return v
}

// Validate checks that value is an integer type and, when Positive is
// set, that it is not negative.
func (v Integer) Validate(value any) error {
	n, ok := asInt64(value)
	if !ok {
		return typeMismatch("expected %v to be an integer; got %T instead", value, value)
	}
	if v.Positive && n < 0 {
		return typeMismatch("%d is not a positive integer", n)
	}
	return nil
}
