// Package lineshape provides the broadening functions used to turn discrete
// (frequency, intensity) sticks into a continuous spectrum.
//
// Both shapes are parameterized by a width w and evaluated as
//
//	Lorentzian(x) = h / (1 + (2(x-c)/w)^2)
//	Gaussian(x)   = h * exp(-((x-c)/w)^2)
//
// For the Lorentzian w is the full width at half maximum. The Gaussian uses
// w directly as its 1/e half width, which is the convention the VCD
// prefactor 1/(sqrt(pi)*w) is normalized against.
package lineshape

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Lorentzian evaluates a Lorentzian of peak height h centered at c.
func Lorentzian(x, c, h, w float64) float64 {
	u := 2 * (x - c) / w
	return h / (1 + u*u)
}

// Gaussian evaluates a Gaussian of peak height h centered at c.
func Gaussian(x, c, h, w float64) float64 {
	u := (x - c) / w
	return h * math.Exp(-u*u)
}

// Accumulator sums lineshapes sampled on a fixed grid.
type Accumulator struct {
	x    []float64
	sum  []float64
	line []float64
}

// NewAccumulator returns an empty accumulator over the sample points x.
// x is retained, not copied.
func NewAccumulator(x []float64) *Accumulator {
	return &Accumulator{
		x:    x,
		sum:  make([]float64, len(x)),
		line: make([]float64, len(x)),
	}
}

// AddLorentzian adds a Lorentzian centered at c with height h and FWHM w.
func (a *Accumulator) AddLorentzian(c, h, w float64) {
	for i, x := range a.x {
		a.line[i] = Lorentzian(x, c, h, w)
	}
	vecmath.AddBlockInPlace(a.sum, a.line)
}

// AddGaussian adds a Gaussian centered at c with height h and width w.
func (a *Accumulator) AddGaussian(c, h, w float64) {
	for i, x := range a.x {
		a.line[i] = Gaussian(x, c, h, w)
	}
	vecmath.AddBlockInPlace(a.sum, a.line)
}

// Values returns the accumulated sum. The slice is owned by the accumulator
// until Reset is called.
func (a *Accumulator) Values() []float64 { return a.sum }

// Reset clears the accumulated sum.
func (a *Accumulator) Reset() {
	clear(a.sum)
}
