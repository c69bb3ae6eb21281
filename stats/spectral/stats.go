// Package spectral summarizes a signed spectrum sampled on a wavenumber
// axis, as used to describe converged and partial chiroptical spectra.
package spectral

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/integrate"
)

// ErrLengthMismatch is returned when values and axis differ in length.
var ErrLengthMismatch = errors.New("spectral: values and axis length mismatch")

// Stats holds summary statistics of a signed spectrum.
type Stats struct {
	Points        int
	Max           float64
	MaxAt         float64 // axis position of Max (cm^-1)
	Min           float64
	MinAt         float64 // axis position of Min (cm^-1)
	Energy        float64 // ∫ x² over the axis
	Centroid      float64 // |x|-weighted mean position (cm^-1)
	Spread        float64 // |x|-weighted standard deviation (cm^-1)
	ZeroCrossings int
	Positive      float64 // fraction of samples > 0
}

// Calculate computes Stats for values sampled at axis.
func Calculate(values, axis []float64) (Stats, error) {
	if len(values) != len(axis) {
		return Stats{}, ErrLengthMismatch
	}
	n := len(values)
	if n == 0 {
		return Stats{}, nil
	}

	s := Stats{
		Points: n,
		Max:    values[0],
		MaxAt:  axis[0],
		Min:    values[0],
		MinAt:  axis[0],
	}

	var sumAbs, positive float64
	sq := make([]float64, n)
	for i, v := range values {
		if v > s.Max {
			s.Max, s.MaxAt = v, axis[i]
		}
		if v < s.Min {
			s.Min, s.MinAt = v, axis[i]
		}
		if v > 0 {
			positive++
		}
		sq[i] = v * v
		sumAbs += math.Abs(v)
	}
	s.Positive = positive / float64(n)
	s.ZeroCrossings = ZeroCrossings(values)
	if n > 1 {
		s.Energy = integrate.Trapezoidal(axis, sq)
	}
	s.Centroid = centroid(values, axis, sumAbs)
	s.Spread = spread(values, axis, s.Centroid, sumAbs)

	return s, nil
}

// Centroid returns the |x|-weighted mean axis position.
//
//	centroid = sum(f_i * |x_i|) / sum(|x_i|)
func Centroid(values, axis []float64) (float64, error) {
	if len(values) != len(axis) {
		return 0, ErrLengthMismatch
	}
	sum := 0.0
	for _, v := range values {
		sum += math.Abs(v)
	}
	return centroid(values, axis, sum), nil
}

func centroid(values, axis []float64, sumAbs float64) float64 {
	if sumAbs == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range values {
		weighted += axis[i] * math.Abs(v)
	}
	return weighted / sumAbs
}

// spread is the standard deviation of the |x| distribution around the centroid.
func spread(values, axis []float64, cent, sumAbs float64) float64 {
	if sumAbs == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range values {
		d := axis[i] - cent
		weighted += d * d * math.Abs(v)
	}
	return math.Sqrt(weighted / sumAbs)
}

// ZeroCrossings counts sign changes between consecutive samples. Zeros do
// not start or end a crossing on their own.
func ZeroCrossings(values []float64) int {
	n := 0
	prev := 0.0
	for _, v := range values {
		if v == 0 {
			continue
		}
		if prev != 0 && (v > 0) != (prev > 0) {
			n++
		}
		prev = v
	}
	return n
}
