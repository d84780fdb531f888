package style

import "fmt"

// ValidationError reports a value rejected by a validator or by a
// property's choices.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UnknownPropertyError reports access to a property name that is not
// declared on the target registry.
type UnknownPropertyError struct {
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown CSS property '%s'", e.Name)
}
