// Package convergence tracks how a snapshot-averaged spectrum approaches the
// fully converged spectrum as more snapshots are included.
//
// The sweep visits cutoffs step, 2*step, ... up to the total snapshot count.
// At each cutoff the records of conformers <= cutoff are taken from the
// in-memory dataset, their observables are divided by the cutoff, and the
// resulting partial spectrum is compared with the converged one:
//
//   - error spectrum: converged - partial
//   - overlap: normalized trapezoidal overlap over the wavenumber axis
//   - sign mismatches: samples where the two spectra have opposite sign
//
// When the total is not a multiple of the step the sweep stops short of the
// full set unless WithFinalCutoff is used.
//
// # Usage
//
//	tr := convergence.NewTracker(synth.New(ax), convergence.WithStepSize(50))
//	res, err := tr.Run(ds)
//	for _, s := range res.Samples {
//		fmt.Println(s.Cutoff, s.Overlap, s.SignMismatches)
//	}
package convergence
