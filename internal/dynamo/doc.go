// Package dynamo provides the core types of the inventory simulation.
//
// The package defines the value objects shared by the models, the
// integrators and the runner:
//
//   - [Config]: validated simulation parameters (one run)
//   - [Sample] and [Trajectory]: the integrated inventory curve
//   - [Result]: the priced trajectory plus stock-out metrics
//   - [FlowFunc] and [Stepper]: the ODE right-hand side and a single-step scheme
//
// # Example
//
//	cfg, err := dynamo.NewConfig(dynamo.DefaultConfig())
//	if err != nil {
//	    return err // wraps dynamo.ErrInvalidConfiguration
//	}
//	res, err := sim.Run(ctx, cfg)
//
// # Thread Safety
//
// Config is passed by value and never mutated by the core, so a single
// Config may be shared by concurrent runs. Trajectory and Result belong to
// the caller once returned.
package dynamo
