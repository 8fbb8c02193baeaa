package validator

// Float validates that a value is a floating-point number, optionally
// non-negative. As with Integer, Positive accepts zero.
type Float struct {
	FieldName string
	Positive  bool
}

// NewFloat returns an unbound Float validator.
func NewFloat(positive bool) Float {
	return Float{Positive: positive}
}

// Name returns the bound field name.
func (v Float) Name() string { return v.FieldName }

// Bind returns a copy bound to name.
func (v Float) Bind(name string) Validator {
	v.FieldName = name
	return v
}

// Validate checks that value is a float type and, when Positive is set,
// that it is not negative.
func (v Float) Validate(value any) error {
	var f float64
	switch x := value.(type) {
	case float32:
		f = float64(x)
	case float64:
		f = x
	default:
		return typeMismatch("expected %v to be a float; got %T instead", value, value)
	}
	if v.Positive && f < 0 {
		return typeMismatch("%v is not a positive float", f)
	}
	return nil
}
