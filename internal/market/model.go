package market

import "github.com/san-kum/stockout/internal/dynamo"

// Model evaluates demand and net flow for one configuration.
type Model struct {
	cfg dynamo.Config
}

// NewModel binds the pricing and demand rules to cfg.
func NewModel(cfg dynamo.Config) Model {
	return Model{cfg: cfg}
}

// Config returns the configuration the model was built with.
func (m Model) Config() dynamo.Config {
	return m.cfg
}

// Price is the unit price at the given inventory level.
func (m Model) Price(level float64) float64 {
	return Price(level, m.cfg.BasePrice)
}

// Demand is the hourly demand at level and time t.
func (m Model) Demand(level, t float64) float64 {
	return Demand(level, t, m.cfg)
}

// NetFlow is production minus demand; it satisfies dynamo.FlowFunc.
func (m Model) NetFlow(level, t float64) float64 {
	return m.cfg.ProductionRate - m.Demand(level, t)
}
