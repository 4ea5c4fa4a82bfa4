package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/stockout/internal/dynamo"
)

// Default is the stepper used when none is named.
const Default = "rk4"

var registry = map[string]func() dynamo.Stepper{
	"rk4":   func() dynamo.Stepper { return NewRK4() },
	"euler": func() dynamo.Stepper { return NewEuler() },
}

// Lookup returns a new stepper by name. An empty name selects Default.
func Lookup(name string) (dynamo.Stepper, error) {
	if name == "" {
		name = Default
	}
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownStepper, name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
