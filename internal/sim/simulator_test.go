package sim_test

import (
	"context"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stockout/internal/dynamo"
	"github.com/san-kum/stockout/internal/integrators"
	"github.com/san-kum/stockout/internal/market"
	"github.com/san-kum/stockout/internal/sim"
)

func config(edit func(c *dynamo.Config)) dynamo.Config {
	cfg := dynamo.DefaultConfig()
	if edit != nil {
		edit(&cfg)
	}
	return cfg
}

var quiet = sim.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

var _ = Describe("Simulator", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("when production always outpaces demand", func() {
		var res *dynamo.Result

		BeforeEach(func() {
			cfg := config(func(c *dynamo.Config) {
				c.BaseDemand = 2
				c.Popularity = 1
				c.FluctuationPct = 0
			})
			var err error
			res, err = sim.Run(ctx, cfg)
			Expect(err).NotTo(HaveOccurred())
		})

		It("never stocks out", func() {
			Expect(res.Depleted()).To(BeFalse())
			Expect(res.StockoutHour).To(BeNil())
			Expect(res.StockoutIndex).To(Equal(-1))
		})

		It("covers the full horizon", func() {
			Expect(res.Trajectory).To(HaveLen(721))
			Expect(res.Trajectory.Last().Time).To(Equal(720.0))
			Expect(res.Duration()).To(Equal(720.0))
		})

		It("grows inventory monotonically", func() {
			for i := 1; i < len(res.Trajectory); i++ {
				Expect(res.Trajectory[i].Level).To(BeNumerically(">", res.Trajectory[i-1].Level))
			}
		})

		It("reports the price at the last sample", func() {
			last := res.Trajectory.Last().Level
			Expect(res.FinalPrice).To(Equal(market.Price(last, 50)))
		})
	})

	Context("when demand is at its popularity ceiling", func() {
		var res *dynamo.Result

		BeforeEach(func() {
			cfg := config(func(c *dynamo.Config) {
				c.InitialInventory = 100
				c.ProductionRate = 10
				c.BaseDemand = 10
				c.Popularity = 10
			})
			var err error
			res, err = sim.Run(ctx, cfg)
			Expect(err).NotTo(HaveOccurred())
		})

		It("stocks out before the horizon", func() {
			Expect(res.StockoutHour).NotTo(BeNil())
			Expect(*res.StockoutHour).To(BeNumerically("<", 720))
		})

		It("ends the trajectory at the stock-out sample", func() {
			Expect(res.StockoutIndex).To(Equal(len(res.Trajectory) - 1))
			Expect(res.Trajectory.Last().Level).To(BeNumerically("<=", 0))
			Expect(res.Trajectory.Last().Time).To(Equal(*res.StockoutHour))
			for _, s := range res.Trajectory[:res.StockoutIndex] {
				Expect(s.Level).To(BeNumerically(">", 0))
			}
		})

		It("reports the price at the stock-out point", func() {
			Expect(res.FinalPrice).To(Equal(res.Prices[res.StockoutIndex]))
		})

		It("interpolates a crossing inside the last step", func() {
			est, ok := res.InterpolatedStockoutHour()
			Expect(ok).To(BeTrue())
			Expect(est).To(BeNumerically("<=", *res.StockoutHour))
			Expect(est).To(BeNumerically(">=", res.Trajectory[res.StockoutIndex-1].Time))
		})
	})

	// With base price 50 the price never exceeds 50, so elasticity is at
	// least 2.5 and demand at least 25 units/h, above production of 15.
	It("depletes the 1000-unit neutral-popularity catalogue within 100 hours", func() {
		cfg := config(func(c *dynamo.Config) { c.FluctuationPct = 0 })
		res, err := sim.Run(ctx, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StockoutHour).NotTo(BeNil())
		Expect(*res.StockoutHour).To(BeNumerically("<=", 100))
	})

	It("stops at the stock-out hour of a run with a far horizon", func() {
		cfg := config(func(c *dynamo.Config) { c.Horizon = 1e15 })
		res, err := sim.Run(ctx, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Depleted()).To(BeTrue())
		Expect(len(res.Trajectory)).To(BeNumerically("<", 1000))
		Expect(res.Prices).To(HaveLen(len(res.Trajectory)))
	})

	It("aligns prices with trajectory samples", func() {
		res, err := sim.Run(ctx, dynamo.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Prices).To(HaveLen(len(res.Trajectory)))
		for i, s := range res.Trajectory {
			Expect(res.Prices[i]).To(Equal(market.Price(s.Level, res.Config.BasePrice)))
			Expect(res.Prices[i]).To(BeNumerically(">=", market.MinPrice))
		}
	})

	It("is deterministic", func() {
		cfg := dynamo.DefaultConfig()
		a, err := sim.Run(ctx, cfg)
		Expect(err).NotTo(HaveOccurred())
		b, err := sim.Run(ctx, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("reports the default metrics", func() {
		res, err := sim.Run(ctx, dynamo.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Metrics).To(HaveKey("min_inventory"))
		Expect(res.Metrics).To(HaveKey("mean_price"))
		Expect(res.Metrics).To(HaveKey("depletion_rate"))
		Expect(res.Metrics["min_inventory"]).To(Equal(res.Trajectory.Last().Level))
	})

	Describe("invalid configurations", func() {
		It("rejects production above initial inventory before integrating", func() {
			calls := 0
			counting := stepperFunc(func(f dynamo.FlowFunc, x, t, dt float64) float64 {
				calls++
				return x
			})

			cfg := config(func(c *dynamo.Config) {
				c.InitialInventory = 10
				c.ProductionRate = 20
				c.BaseDemand = 5
			})
			res, err := sim.New(counting, quiet).Run(ctx, cfg)
			Expect(err).To(MatchError(dynamo.ErrInvalidConfiguration))
			Expect(res).To(BeNil())
			Expect(calls).To(BeZero())
		})

		It("exposes the offending field", func() {
			cfg := config(func(c *dynamo.Config) { c.Popularity = 0 })
			_, err := sim.Run(ctx, cfg)
			var cerr *dynamo.ConfigError
			Expect(err).To(BeAssignableToTypeOf(cerr))
			Expect(err.(*dynamo.ConfigError).Field).To(Equal("popularity"))
		})
	})

	It("returns no result when canceled", func() {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		res, err := sim.Run(canceled, dynamo.DefaultConfig())
		Expect(err).To(MatchError(context.Canceled))
		Expect(res).To(BeNil())
	})

	It("labels results with the stepper name", func() {
		s, err := sim.NewNamed("euler", quiet)
		Expect(err).NotTo(HaveOccurred())
		res, err := s.Run(ctx, dynamo.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Stepper).To(Equal("euler"))

		_, err = sim.NewNamed("leapfrog")
		Expect(err).To(MatchError(dynamo.ErrUnknownStepper))
	})

	It("matches a direct integration of the market model", func() {
		cfg := dynamo.DefaultConfig()
		res, err := sim.Run(ctx, cfg)
		Expect(err).NotTo(HaveOccurred())

		m := market.NewModel(cfg)
		traj, err := integrators.Integrate(ctx, integrators.NewRK4(), m.NetFlow, cfg.InitialInventory, cfg.Horizon, cfg.Step)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Trajectory).To(Equal(traj))
	})
})

type stepperFunc func(f dynamo.FlowFunc, x, t, dt float64) float64

func (s stepperFunc) Step(f dynamo.FlowFunc, x, t, dt float64) float64 { return s(f, x, t, dt) }
