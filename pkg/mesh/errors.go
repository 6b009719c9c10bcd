package mesh

import "fmt"

// InvalidArgumentError reports a caller-supplied parameter that the
// generators cannot work with, such as an unknown solid kind or a
// non-positive segment count.
type InvalidArgumentError struct {
	Arg    string // parameter name
	Value  any    // offending value
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%v: %s", e.Arg, e.Value, e.Reason)
}

// InvalidArg builds an InvalidArgumentError.
func InvalidArg(arg string, value any, reason string) error {
	return &InvalidArgumentError{Arg: arg, Value: value, Reason: reason}
}

// InvariantViolationError reports a structurally broken mesh: a missing
// required attribute, mismatched parallel array lengths, or an index that
// references a vertex past the end of the position array.
type InvariantViolationError struct {
	Attribute string
	Reason    string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("mesh invariant violated (%s): %s", e.Attribute, e.Reason)
}

func violation(attribute, format string, args ...any) error {
	return &InvariantViolationError{Attribute: attribute, Reason: fmt.Sprintf(format, args...)}
}
