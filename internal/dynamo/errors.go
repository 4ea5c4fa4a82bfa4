package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidConfiguration indicates a parameter violates a documented invariant.
	ErrInvalidConfiguration = errors.New("dynamo: invalid configuration")

	// ErrUnknownParameter indicates a parameter name that no Config field answers to.
	ErrUnknownParameter = errors.New("dynamo: unknown parameter")

	// ErrUnknownStepper indicates a stepper name that is not registered.
	ErrUnknownStepper = errors.New("dynamo: unknown stepper")
)

// ConfigError reports which parameter broke which rule.
type ConfigError struct {
	Field string
	Value float64
	Rule  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s=%g: %s", ErrInvalidConfiguration, e.Field, e.Value, e.Rule)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
