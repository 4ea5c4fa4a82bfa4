package integrators

import (
	"context"

	"github.com/san-kum/stockout/internal/dynamo"
)

// maxPrealloc bounds the up-front trajectory capacity; longer runs grow by append.
const maxPrealloc = 4096

// Integrate advances x0 over [0, horizon] on a fixed grid of size dt and
// returns the sampled trajectory. Sample i sits at t = i*dt.
//
// Integration stops at the first sample whose level is at or below zero;
// that sample is kept as the last entry. The context is checked before
// every step; on cancellation the samples computed so far are returned
// together with ctx.Err().
func Integrate(ctx context.Context, s dynamo.Stepper, f dynamo.FlowFunc, x0, horizon, dt float64) (dynamo.Trajectory, error) {
	n := dynamo.SampleCount(horizon, dt)

	traj := make(dynamo.Trajectory, 0, min(n, maxPrealloc))
	traj = append(traj, dynamo.Sample{Time: 0, Level: x0})
	if x0 <= 0 {
		return traj, nil
	}

	x := x0
	for i := 1; i < n; i++ {
		select {
		case <-ctx.Done():
			return traj, ctx.Err()
		default:
		}

		x = s.Step(f, x, float64(i-1)*dt, dt)
		traj = append(traj, dynamo.Sample{Time: float64(i) * dt, Level: x})

		if x <= 0 {
			break
		}
	}

	return traj, nil
}
