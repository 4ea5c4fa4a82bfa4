package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stockout/internal/dynamo"
	"github.com/san-kum/stockout/internal/sim"
)

var _ = Describe("Sweep", func() {
	It("returns one result per value in input order", func() {
		values := sim.Range(1, 10, 10)
		variants, err := sim.Variants(dynamo.DefaultConfig(), "popularity", values)
		Expect(err).NotTo(HaveOccurred())

		results, err := sim.Sweep(context.Background(), "rk4", variants, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(10))
		for i, res := range results {
			Expect(res.Config.Popularity).To(Equal(values[i]))
		}
	})

	It("matches sequential runs", func() {
		variants, err := sim.Variants(dynamo.DefaultConfig(), "base_demand", []float64{0, 5, 15})
		Expect(err).NotTo(HaveOccurred())

		results, err := sim.Sweep(context.Background(), "", variants, 0)
		Expect(err).NotTo(HaveOccurred())
		for i, v := range variants {
			expected, err := sim.Run(context.Background(), v.Config)
			Expect(err).NotTo(HaveOccurred())
			Expect(results[i]).To(Equal(expected))
		}
	})

	It("rejects an invalid variant before running anything", func() {
		_, err := sim.Variants(dynamo.DefaultConfig(), "popularity", []float64{5, 11})
		Expect(err).To(MatchError(dynamo.ErrInvalidConfiguration))
		Expect(err.Error()).To(ContainSubstring("popularity=11"))
	})

	It("rejects unknown parameters", func() {
		_, err := sim.Variants(dynamo.DefaultConfig(), "colour", []float64{1})
		Expect(err).To(MatchError(dynamo.ErrUnknownParameter))
	})

	It("fails on an unknown stepper", func() {
		variants, err := sim.Variants(dynamo.DefaultConfig(), "popularity", []float64{5})
		Expect(err).NotTo(HaveOccurred())
		_, err = sim.Sweep(context.Background(), "midpoint", variants, 1)
		Expect(err).To(MatchError(dynamo.ErrUnknownStepper))
	})
})

var _ = DescribeTable("Range",
	func(lo, hi float64, count int, expected []float64) {
		Expect(sim.Range(lo, hi, count)).To(Equal(expected))
	},
	Entry("inclusive ends", 1.0, 10.0, 4, []float64{1, 4, 7, 10}),
	Entry("single value", 3.0, 9.0, 1, []float64{3}),
	Entry("empty", 0.0, 1.0, 0, []float64(nil)),
)
