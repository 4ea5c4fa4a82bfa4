package market

import "math"

// MinPrice is the price floor.
const MinPrice = 1.0

// priceDecay is the relative discount per unit of stock on hand.
const priceDecay = 0.01

// Price returns the unit price for the given inventory level.
// Negative levels are priced by magnitude.
func Price(level, basePrice float64) float64 {
	return math.Max(MinPrice, basePrice/(1+priceDecay*math.Abs(level)))
}
