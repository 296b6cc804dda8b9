package spin

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the non-negative frequency bins of
// data. Bin k is k cycles over the full window.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	spectrum := fft.FFTReal(data)
	ps := make([]float64, max(1, len(spectrum)/2))
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency estimates the signed precession rate of tr in rad/s
// from the spectral peak of S_x. The sign comes from the sense of rotation
// of the xy projection.
//
// A trace from Integrate spans a whole number of periods, so the peak lands
// on a bin exactly.
func DominantFrequency(tr *Trace) float64 {
	if len(tr.States) < 2 || tr.Dt <= 0 {
		return 0
	}

	sx := tr.Component(0)
	ps := PowerSpectrum(sx)
	peak := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > ps[peak] || peak == 0 {
			peak = k
		}
	}
	if peak == 0 || ps[peak] == 0 {
		return 0
	}

	omega := 2 * math.Pi * float64(peak) / (float64(len(sx)) * tr.Dt)

	a, b := tr.States[0], tr.States[1]
	if a[0]*b[1]-a[1]*b[0] > 0 {
		return -omega
	}
	return omega
}
