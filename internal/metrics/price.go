package metrics

import "github.com/san-kum/stockout/internal/dynamo"

type MeanPrice struct {
	sum     float64
	samples int
}

func NewMeanPrice() *MeanPrice {
	return &MeanPrice{}
}

func (m *MeanPrice) Name() string { return "mean_price" }

func (m *MeanPrice) Observe(s dynamo.Sample, price float64) {
	m.sum += price
	m.samples++
}

func (m *MeanPrice) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanPrice) Reset() {
	m.sum = 0
	m.samples = 0
}
