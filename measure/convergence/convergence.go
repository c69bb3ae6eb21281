package convergence

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vibspec/measure/similarity"
	"github.com/cwbudde/algo-vibspec/spectro/mode"
	"github.com/cwbudde/algo-vibspec/spectro/synth"
)

// DefaultStepSize is the default number of snapshots added per sweep step.
const DefaultStepSize = 50

// Errors returned by the tracker.
var (
	ErrInvalidStep      = errors.New("convergence: step size must be positive")
	ErrInvalidSnapshots = errors.New("convergence: snapshot count must not be negative")
	ErrAxisMismatch     = errors.New("convergence: converged spectrum does not match the axis")
)

// Sample is the outcome of one sweep step.
type Sample struct {
	Cutoff         int
	Partial        []float64
	Error          []float64
	Overlap        float64
	SignMismatches int
}

// Result holds the converged spectrum and one Sample per sweep step, in
// ascending cutoff order.
type Result struct {
	Wavenumber []float64
	Converged  []float64
	Samples    []Sample
}

// Cutoffs returns the cutoff of every sample.
func (r Result) Cutoffs() []int {
	out := make([]int, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Cutoff
	}
	return out
}

// Overlaps returns the overlap of every sample.
func (r Result) Overlaps() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Overlap
	}
	return out
}

// SignMismatches returns the sign-mismatch count of every sample.
func (r Result) SignMismatches() []int {
	out := make([]int, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.SignMismatches
	}
	return out
}

// Cutoffs returns step, 2*step, ... while <= total. With includeFinal set,
// total is appended when it does not fall on a step boundary.
func Cutoffs(total, step int, includeFinal bool) ([]int, error) {
	if step <= 0 {
		return nil, ErrInvalidStep
	}
	if total < 0 {
		return nil, ErrInvalidSnapshots
	}
	var out []int
	for c := step; c <= total; c += step {
		out = append(out, c)
	}
	if includeFinal && total > 0 && total%step != 0 {
		out = append(out, total)
	}
	return out, nil
}

// Tracker runs the snapshot sweep.
type Tracker struct {
	synth        *synth.Synthesizer
	stepSize     int
	includeFinal bool
	progress     func(cutoff int)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithStepSize sets the number of snapshots added per step. Non-positive
// values are ignored.
func WithStepSize(step int) Option {
	return func(t *Tracker) {
		if step > 0 {
			t.stepSize = step
		}
	}
}

// WithFinalCutoff makes the sweep end on the full snapshot count even when
// it is not a multiple of the step size.
func WithFinalCutoff(enabled bool) Option {
	return func(t *Tracker) {
		t.includeFinal = enabled
	}
}

// WithProgress registers fn to be called before each cutoff is processed.
func WithProgress(fn func(cutoff int)) Option {
	return func(t *Tracker) {
		t.progress = fn
	}
}

// NewTracker returns a Tracker synthesizing spectra with s.
func NewTracker(s *synth.Synthesizer, opts ...Option) *Tracker {
	t := &Tracker{synth: s, stepSize: DefaultStepSize}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// StepSize returns the configured step size.
func (t *Tracker) StepSize() int { return t.stepSize }

// Converged returns the spectrum of every record in ds, unscaled.
func (t *Tracker) Converged(ds *mode.Dataset) (synth.Spectrum, error) {
	spec, err := t.synth.Synthesize(ds.Modes())
	if err != nil {
		return synth.Spectrum{}, fmt.Errorf("convergence: converged spectrum: %w", err)
	}
	return spec, nil
}

// Run computes the converged spectrum of ds and sweeps against it.
func (t *Tracker) Run(ds *mode.Dataset) (Result, error) {
	conv, err := t.Converged(ds)
	if err != nil {
		return Result{}, err
	}
	return t.Sweep(ds, conv)
}

// Sweep compares partial spectra at every cutoff against converged.
func (t *Tracker) Sweep(ds *mode.Dataset, converged synth.Spectrum) (Result, error) {
	x := t.synth.Axis().Wavenumber
	if len(converged.Values) != len(x) {
		return Result{}, ErrAxisMismatch
	}

	cutoffs, err := Cutoffs(ds.Snapshots, t.stepSize, t.includeFinal)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Wavenumber: x,
		Converged:  converged.Values,
		Samples:    make([]Sample, 0, len(cutoffs)),
	}
	for _, cutoff := range cutoffs {
		if t.progress != nil {
			t.progress(cutoff)
		}
		s, err := t.sample(ds, converged.Values, x, cutoff)
		if err != nil {
			return Result{}, fmt.Errorf("convergence: cutoff %d: %w", cutoff, err)
		}
		res.Samples = append(res.Samples, s)
	}
	return res, nil
}

func (t *Tracker) sample(ds *mode.Dataset, converged, x []float64, cutoff int) (Sample, error) {
	modes, err := ds.UpTo(cutoff)
	if err != nil {
		return Sample{}, err
	}

	partial, err := t.synth.Synthesize(mode.Scaled(modes, 1/float64(cutoff)))
	if err != nil {
		return Sample{}, err
	}

	diff, err := similarity.ErrorSpectrum(converged, partial.Values)
	if err != nil {
		return Sample{}, err
	}

	overlap, err := similarity.Overlap(x, converged, partial.Values)
	if err != nil {
		return Sample{}, err
	}

	mismatches, err := similarity.SignMismatches(converged, partial.Values)
	if err != nil {
		return Sample{}, err
	}

	return Sample{
		Cutoff:         cutoff,
		Partial:        partial.Values,
		Error:          diff,
		Overlap:        overlap,
		SignMismatches: mismatches,
	}, nil
}
