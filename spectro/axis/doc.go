// Package axis builds the fixed frequency grid shared by every spectrum of
// an analysis run.
//
// Frequencies are held in natural units (eV) and mirrored in wavenumbers
// (cm^-1). Because the converged spectrum and every partial spectrum are
// sampled on the same grid, spectra can be compared point by point.
//
//	ax, err := axis.New(2000)
//	// ax.Natural[i]    = i * MaxFrequency / 2000
//	// ax.Wavenumber[i] = ax.Natural[i] * EVToWavenumber
package axis
