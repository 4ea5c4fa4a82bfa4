package integrators

import "github.com/san-kum/stockout/internal/dynamo"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f dynamo.FlowFunc, x, t, dt float64) float64 {
	return x + dt*f(x, t)
}
