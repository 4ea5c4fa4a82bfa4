package dynamo

// FlowFunc is the right-hand side dI/dt = f(I, t) of the inventory ODE.
type FlowFunc func(level, t float64) float64

// Stepper advances the inventory level by one step of size dt.
type Stepper interface {
	Step(f FlowFunc, level, t, dt float64) float64
}

// Sample is one point of a trajectory.
type Sample struct {
	Time  float64 `json:"time_hours"`
	Level float64 `json:"inventory_level"`
}

// Trajectory is an inventory curve ordered by time.
type Trajectory []Sample

func (tr Trajectory) Times() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.Time
	}
	return out
}

func (tr Trajectory) Levels() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.Level
	}
	return out
}

// StockoutIndex returns the index of the first sample at or below zero, or -1.
func (tr Trajectory) StockoutIndex() int {
	for i, s := range tr {
		if s.Level <= 0 {
			return i
		}
	}
	return -1
}

// Last returns the final sample. It panics on an empty trajectory.
func (tr Trajectory) Last() Sample {
	return tr[len(tr)-1]
}

// Result is the outcome of one simulation run.
type Result struct {
	Config        Config             `json:"config"`
	Stepper       string             `json:"stepper"`
	Trajectory    Trajectory         `json:"trajectory"`
	Prices        []float64          `json:"prices"`
	StockoutHour  *float64           `json:"stockout_hour"`
	StockoutIndex int                `json:"stockout_index"`
	FinalPrice    float64            `json:"final_price"`
	Metrics       map[string]float64 `json:"metrics,omitempty"`
}

// Depleted reports whether inventory reached zero within the horizon.
func (r *Result) Depleted() bool {
	return r.StockoutHour != nil
}

// Duration returns the simulated time span in hours.
func (r *Result) Duration() float64 {
	if len(r.Trajectory) == 0 {
		return 0
	}
	return r.Trajectory.Last().Time
}

// InterpolatedStockoutHour estimates the zero crossing by linear
// interpolation between the last positive sample and the stock-out sample.
// StockoutHour stays grid-aligned; this is an additional estimate.
func (r *Result) InterpolatedStockoutHour() (float64, bool) {
	if r.StockoutHour == nil {
		return 0, false
	}
	i := r.StockoutIndex
	if i <= 0 {
		return *r.StockoutHour, true
	}
	prev, cur := r.Trajectory[i-1], r.Trajectory[i]
	drop := prev.Level - cur.Level
	if drop <= 0 {
		return cur.Time, true
	}
	return prev.Time + (cur.Time-prev.Time)*prev.Level/drop, true
}
