// Package sim runs inventory simulations end to end.
//
// [Simulator.Run] validates a [dynamo.Config], integrates the net flow of a
// [market.Model], prices every sample and locates the stock-out. [Sweep]
// runs independent variants of a configuration in parallel.
package sim
