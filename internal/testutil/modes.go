package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-vibspec/spectro/mode"
)

// DeterministicModes generates n modes with a fixed seed. Frequencies are
// uniform in [lo, hi) eV and observables uniform in [-amplitude, amplitude).
func DeterministicModes(seed int64, n int, lo, hi, amplitude float64) []mode.Mode {
	out := make([]mode.Mode, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = mode.Mode{
			Frequency:  lo + rng.Float64()*(hi-lo),
			Observable: (rng.Float64()*2 - 1) * amplitude,
		}
	}
	return out
}

// ConformerDataset generates a dataset of conformers numbered 1..conformers,
// each contributing modesPer modes drawn from a fixed band set so that
// partial spectra converge toward the full one.
func ConformerDataset(seed int64, conformers, modesPer int) *mode.Dataset {
	rng := rand.New(rand.NewSource(seed))
	bands := make([]mode.Mode, modesPer)
	for i := range bands {
		bands[i] = mode.Mode{
			Frequency:  0.05 + 0.4*float64(i)/float64(modesPer),
			Observable: (rng.Float64()*2 - 1) * 10,
		}
	}

	ds := &mode.Dataset{Snapshots: conformers}
	for c := 1; c <= conformers; c++ {
		for _, b := range bands {
			ds.Records = append(ds.Records, mode.Record{
				Conformer: c,
				Mode: mode.Mode{
					Frequency:  b.Frequency + (rng.Float64()*2-1)*0.002,
					Observable: b.Observable + (rng.Float64()*2-1)*2,
				},
			})
		}
	}
	return ds
}

// Negated returns -x.
func Negated(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = -v
	}
	return out
}

// CountNonZero returns the number of non-zero elements of x.
func CountNonZero(x []float64) int {
	n := 0
	for _, v := range x {
		if v != 0 {
			n++
		}
	}
	return n
}
