package analysis

import (
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/san-kum/stockout/internal/dynamo"
)

// FFT computes the discrete Fourier transform of data. The length must be a
// power of two; see Pad.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		out := make([]complex128, n)
		for i := range data {
			out[i] = complex(data[i], 0)
		}
		return out
	}
	if n&(n-1) != 0 {
		panic("analysis: fft length must be a power of two")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}
	fe, fo := FFT(even), FFT(odd)

	out := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n))) * fo[k]
		out[k] = fe[k] + w
		out[k+n/2] = fe[k] - w
	}
	return out
}

// PowerSpectrum returns the magnitude of the first half of the spectrum.
func PowerSpectrum(data []float64) []float64 {
	coeffs := FFT(data)
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// Pad zero-pads data to the next power of two.
func Pad(data []float64) []float64 {
	n := len(data)
	if n <= 1 {
		return append([]float64(nil), data...)
	}
	size := 1 << bits.Len(uint(n-1))
	out := make([]float64, size)
	copy(out, data)
	return out
}

// NetFlowSeries returns the per-interval level change divided by the
// interval length, one value per step.
func NetFlowSeries(tr dynamo.Trajectory) []float64 {
	if len(tr) < 2 {
		return nil
	}
	out := make([]float64, len(tr)-1)
	for i := 1; i < len(tr); i++ {
		out[i-1] = (tr[i].Level - tr[i-1].Level) / (tr[i].Time - tr[i-1].Time)
	}
	return out
}

// DominantPeriod returns the period, in the units of step, of the strongest
// non-constant component of series. The mean is removed before transforming.
// It reports false when the series is too short or has no oscillation.
func DominantPeriod(series []float64, step float64) (float64, bool) {
	if len(series) < 4 || step <= 0 {
		return 0, false
	}

	var mean float64
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	centered := make([]float64, len(series))
	for i, v := range series {
		centered[i] = v - mean
	}
	padded := Pad(centered)
	ps := PowerSpectrum(padded)

	best, bestPow := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestPow {
			best, bestPow = k, ps[k]
		}
	}
	if best == 0 || bestPow < 1e-9 {
		return 0, false
	}
	return float64(len(padded)) * step / float64(best), true
}
