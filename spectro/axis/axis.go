package axis

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Grid bounds and unit conversion.
const (
	MinFrequency   = 0.0        // eV
	MaxFrequency   = 0.49593677 // eV, 4000 cm^-1
	EVToWavenumber = 8065.54429 // cm^-1 per eV
)

// ErrTooFewPoints is returned when a grid would have fewer than two samples.
var ErrTooFewPoints = errors.New("axis: at least 2 points are required")

// Axis is a uniformly spaced frequency grid.
type Axis struct {
	Natural    []float64 // eV
	Wavenumber []float64 // cm^-1
}

// New returns a grid of exactly numPoints samples covering
// [MinFrequency, MaxFrequency). The upper bound itself is not sampled.
func New(numPoints int) (Axis, error) {
	if numPoints < 2 {
		return Axis{}, ErrTooFewPoints
	}

	delta := (MaxFrequency - MinFrequency) / float64(numPoints)
	natural := make([]float64, numPoints)
	for i := range natural {
		natural[i] = MinFrequency + float64(i)*delta
	}

	wavenumber := make([]float64, numPoints)
	vecmath.ScaleBlock(wavenumber, natural, EVToWavenumber)

	return Axis{Natural: natural, Wavenumber: wavenumber}, nil
}

// Len returns the number of samples.
func (a Axis) Len() int { return len(a.Natural) }

// Step returns the spacing between adjacent samples in eV.
func (a Axis) Step() float64 {
	if len(a.Natural) < 2 {
		return 0
	}
	return a.Natural[1] - a.Natural[0]
}
