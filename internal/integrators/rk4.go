package integrators

import "github.com/san-kum/stockout/internal/dynamo"

// RK4 is the classic fourth-order explicit Runge-Kutta scheme.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f dynamo.FlowFunc, x, t, dt float64) float64 {
	half := dt * 0.5

	k1 := f(x, t)
	k2 := f(x+half*k1, t+half)
	k3 := f(x+half*k2, t+half)
	k4 := f(x+dt*k3, t+dt)

	return x + dt/6.0*(k1+2*k2+2*k3+k4)
}
