// Package market provides the price and demand models that drive the
// inventory ODE.
//
//   - [Price]: unit price as a function of stock on hand, floored at [MinPrice]
//   - [Demand]: popularity, fluctuation, weekend surge and price elasticity
//   - [Model]: binds a [dynamo.Config] and exposes the net flow
//
// All functions are pure. Demand is not clamped at zero: extreme
// fluctuation amplitudes or base prices far above [ElasticityPivot] can
// make it negative, and the model reports that value unchanged.
package market
