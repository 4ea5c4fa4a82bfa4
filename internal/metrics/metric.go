package metrics

import "github.com/san-kum/stockout/internal/dynamo"

// Metric accumulates a summary value over the samples of one run.
type Metric interface {
	Name() string
	Observe(s dynamo.Sample, price float64)
	Value() float64
	Reset()
}

// Defaults returns fresh instances of the metrics reported for every run.
func Defaults() []Metric {
	return []Metric{
		NewMinInventory(),
		NewMeanPrice(),
		NewDepletionRate(),
	}
}
