package yin

import (
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// DifferenceMethod selects how the lag-domain difference curve is computed.
type DifferenceMethod int

const (
	// DifferenceAuto selects direct computation for small lag ranges and
	// the FFT path for large ones.
	DifferenceAuto DifferenceMethod = iota

	// DifferenceDirect evaluates the autocorrelation term lag by lag with
	// SIMD dot products. O(N * maxLag).
	DifferenceDirect

	// DifferenceFFT evaluates the autocorrelation term with a single FFT
	// round trip. O(F log F) for F = nextPowerOf2(N + maxLag).
	DifferenceFFT
)

// Crossover between direct and FFT difference computation, in evaluated lags.
// Determined empirically: direct SIMD dot products win below roughly a
// hundred lags.
const directLagThreshold = 128

// difference returns d(tau) for tau in [0, maxLag): the summed squared
// difference between the frame and its tau-shifted copy over their overlap.
//
// Both methods expand the square,
//
//	d(tau) = E[0, n-tau) + E[tau, n) - 2*r(tau),
//
// with prefix sums of squared samples for the energy terms, and differ only
// in how the autocorrelation term r(tau) is obtained.
func (d *Detector) difference(frame []float64, maxLag int) []float64 {
	method := d.cfg.Difference
	if method == DifferenceAuto {
		if maxLag < directLagThreshold {
			method = DifferenceDirect
		} else {
			method = DifferenceFFT
		}
	}

	var r []float64
	if method == DifferenceFFT {
		r = autocorrFFT(frame, maxLag)
	}

	if r == nil {
		r = autocorrDirect(frame, maxLag)
	}

	n := len(frame)

	// prefix[i] holds the energy of frame[:i].
	prefix := make([]float64, n+1)
	for i, x := range frame {
		prefix[i+1] = prefix[i] + x*x
	}

	curve := make([]float64, maxLag)

	for tau := 1; tau < maxLag; tau++ {
		dv := prefix[n-tau] + (prefix[n] - prefix[tau]) - 2*r[tau]
		// The expansion can go fractionally negative through rounding;
		// the true difference is a sum of squares.
		if dv < 0 {
			dv = 0
		}

		curve[tau] = dv
	}

	return curve
}

// autocorrDirect computes r(tau) = sum frame[i]*frame[i+tau] over the overlap
// for each lag in [1, maxLag). r[0] stays zero; the difference curve never
// reads it.
func autocorrDirect(frame []float64, maxLag int) []float64 {
	n := len(frame)
	r := make([]float64, maxLag)

	for tau := 1; tau < maxLag; tau++ {
		r[tau] = vecmath.DotProduct(frame[:n-tau], frame[tau:])
	}

	return r
}

// autocorrFFT computes the same linear autocorrelation through an FFT round
// trip: r = Re(IFFT(X * conj(X))). The transform is padded to keep circular
// wrap-around out of the evaluated lag range. Falls back to nil (direct
// computation) if the FFT plan cannot be built.
func autocorrFFT(frame []float64, maxLag int) []float64 {
	n := len(frame)
	fftSize := nextPowerOf2(n + maxLag)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil
	}

	padded := make([]complex128, fftSize)
	for i, x := range frame {
		padded[i] = complex(x, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil
	}

	// X * conj(X) is the power spectrum, purely real.
	for i, c := range freq {
		re := real(c)
		im := imag(c)
		freq[i] = complex(re*re+im*im, 0)
	}

	if err := plan.Inverse(padded, freq); err != nil {
		return nil
	}

	r := make([]float64, maxLag)
	for tau := range r {
		r[tau] = real(padded[tau])
	}

	return r
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
