package metrics

import (
	"math"

	"github.com/san-kum/stockout/internal/dynamo"
)

type MinInventory struct {
	min     float64
	samples int
}

func NewMinInventory() *MinInventory {
	return &MinInventory{min: math.Inf(1)}
}

func (m *MinInventory) Name() string { return "min_inventory" }

func (m *MinInventory) Observe(s dynamo.Sample, price float64) {
	m.samples++
	if s.Level < m.min {
		m.min = s.Level
	}
}

func (m *MinInventory) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.min
}

func (m *MinInventory) Reset() {
	m.min = math.Inf(1)
	m.samples = 0
}

// DepletionRate is the average stock drawn per hour between the first and
// last observed samples. It is negative when stock grew.
type DepletionRate struct {
	first, last dynamo.Sample
	samples     int
}

func NewDepletionRate() *DepletionRate {
	return &DepletionRate{}
}

func (d *DepletionRate) Name() string { return "depletion_rate" }

func (d *DepletionRate) Observe(s dynamo.Sample, price float64) {
	if d.samples == 0 {
		d.first = s
	}
	d.last = s
	d.samples++
}

func (d *DepletionRate) Value() float64 {
	elapsed := d.last.Time - d.first.Time
	if d.samples < 2 || elapsed <= 0 {
		return 0
	}
	return (d.first.Level - d.last.Level) / elapsed
}

func (d *DepletionRate) Reset() {
	d.first = dynamo.Sample{}
	d.last = dynamo.Sample{}
	d.samples = 0
}
