// Package report turns a simulation result into the summary row and the
// CSV and JSON exports.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/san-kum/stockout/internal/dynamo"
)

const (
	hoursPerDay  = 24
	hoursPerWeek = 168
)

// Summary is the headline of one run. For a depleted run Hours is the
// stock-out hour, otherwise the simulated duration.
type Summary struct {
	Depleted   bool            `json:"depleted"`
	Hours      float64         `json:"hours"`
	Days       float64         `json:"days"`
	Weeks      float64         `json:"weeks"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

func Summarize(res *dynamo.Result) Summary {
	hours := res.Duration()
	if res.Depleted() {
		hours = *res.StockoutHour
	}
	return Summary{
		Depleted:   res.Depleted(),
		Hours:      hours,
		Days:       hours / hoursPerDay,
		Weeks:      hours / hoursPerWeek,
		FinalPrice: Money(res.FinalPrice),
	}
}

// Money rounds a price to cents.
func Money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Headers matches the cells returned by Row.
func Headers() []string {
	return []string{"Stock-out", "Hours", "Days", "Weeks", "Final price"}
}

func (s Summary) Row() []string {
	status := "not depleted"
	if s.Depleted {
		status = "depleted"
	}
	return []string{
		status,
		fmt.Sprintf("%.1f", s.Hours),
		fmt.Sprintf("%.1f", s.Days),
		fmt.Sprintf("%.1f", s.Weeks),
		"$" + s.FinalPrice.StringFixed(2),
	}
}

// Status is a one-line human readable outcome.
func (s Summary) Status() string {
	if s.Depleted {
		return fmt.Sprintf("inventory depleted after %.1f hours", s.Hours)
	}
	return fmt.Sprintf("no stock-out within %.1f hours", s.Hours)
}
