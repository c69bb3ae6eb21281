// Package synth synthesizes normalized chiroptical spectra from vibrational
// mode records.
//
// Two methods are supported:
//
//   - ROA: peaks are located in the frequency-ordered observable array and a
//     Lorentzian of the peak's amplitude is placed at each peak frequency.
//   - VCD: every mode contributes a Gaussian weighted by frequency times
//     observable, scaled by 1/(VCDScale*sqrt(pi)*fwhm).
//
// The accumulated spectrum is divided by its maximum absolute value, so the
// result always has max |value| == 1. An empty mode list or an identically
// zero accumulation is reported as an error rather than producing NaNs.
//
// # Usage
//
//	ax, _ := axis.New(synth.DefaultNumPoints)
//	s := synth.New(ax, synth.WithMethod(synth.MethodROA))
//	spec, err := s.Synthesize(modes)
package synth
