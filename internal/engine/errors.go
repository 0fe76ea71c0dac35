package engine

import "fmt"

// MissingAttributeError reports an alternative that lacks an attribute key
// the catalog says it must have. This is a data-source contract violation
// and is never silently defaulted.
type MissingAttributeError struct {
	Alternative string
	Attribute   string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("alternative %q has no value for attribute %q", e.Alternative, e.Attribute)
}

// UnresolvableValueError reports a raw attribute value that could not be
// coerced to a number: a categorical label absent from the lookup table that
// is not numeric either, or a value of an unsupported type.
type UnresolvableValueError struct {
	Alternative string
	Attribute   string
	Value       interface{}
}

func (e *UnresolvableValueError) Error() string {
	return fmt.Sprintf("cannot resolve value %v (attribute %q, alternative %q) to a number",
		e.Value, e.Attribute, e.Alternative)
}

// ComputationFault wraps an unexpected failure inside the solve pipeline.
// It is caught at the solve boundary and surfaced on the result; it never
// escapes as a panic or produces a partial ranking.
type ComputationFault struct {
	Stage string
	Cause error
}

func (e *ComputationFault) Error() string {
	return fmt.Sprintf("computation fault in %s: %v", e.Stage, e.Cause)
}

func (e *ComputationFault) Unwrap() error { return e.Cause }
