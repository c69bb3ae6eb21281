package synth

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vibspec/spectro/axis"
	"github.com/cwbudde/algo-vibspec/spectro/lineshape"
	"github.com/cwbudde/algo-vibspec/spectro/mode"
	"github.com/cwbudde/algo-vibspec/spectro/peak"
	"gonum.org/v1/gonum/floats"
)

// Synthesis defaults.
const (
	DefaultFWHM      = 0.008 // eV
	DefaultNumPoints = 2000

	// VCDScale is the dipole/rotational strength unit constant of the VCD
	// Gaussian prefactor.
	VCDScale = 2.296e-39
)

// Errors returned by synthesis.
var (
	ErrEmptyInput         = errors.New("synth: no modes to synthesize")
	ErrDegenerateSpectrum = errors.New("synth: spectrum is identically zero or non-finite")
	ErrInvalidFWHM        = errors.New("synth: fwhm must be positive")
)

// Method selects the lineshape model.
type Method string

// Supported methods.
const (
	MethodROA Method = "ROA"
	MethodVCD Method = "VCD"
)

// ParseMethod maps user input to a Method. "ROA" (case-insensitive,
// surrounding space ignored) selects ROA; anything else selects VCD.
func ParseMethod(s string) Method {
	if strings.EqualFold(strings.TrimSpace(s), string(MethodROA)) {
		return MethodROA
	}
	return MethodVCD
}

// Label returns the axis label used when plotting spectra of this method.
func (m Method) Label() string {
	if m == MethodROA {
		return "Raman Optical Activity"
	}
	return "Vibrational Circular Dichroism"
}

// Spectrum is a normalized spectrum on the wavenumber axis it was sampled on.
type Spectrum struct {
	Values     []float64
	Wavenumber []float64
}

// Config holds synthesis settings.
type Config struct {
	Method Method
	FWHM   float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns VCD synthesis with DefaultFWHM.
func DefaultConfig() Config {
	return Config{
		Method: MethodVCD,
		FWHM:   DefaultFWHM,
	}
}

// WithMethod sets the synthesis method.
func WithMethod(m Method) Option {
	return func(cfg *Config) {
		cfg.Method = m
	}
}

// WithFWHM sets the broadening width. Non-positive values are ignored.
func WithFWHM(fwhm float64) Option {
	return func(cfg *Config) {
		if fwhm > 0 {
			cfg.FWHM = fwhm
		}
	}
}

// Synthesizer builds spectra on a fixed axis.
type Synthesizer struct {
	axis axis.Axis
	cfg  Config
}

// New returns a Synthesizer over ax.
func New(ax axis.Axis, opts ...Option) *Synthesizer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Synthesizer{axis: ax, cfg: cfg}
}

// Axis returns the grid spectra are sampled on.
func (s *Synthesizer) Axis() axis.Axis { return s.axis }

// Config returns the active settings.
func (s *Synthesizer) Config() Config { return s.cfg }

// Synthesize returns the normalized spectrum of modes.
func (s *Synthesizer) Synthesize(modes []mode.Mode) (Spectrum, error) {
	if len(modes) == 0 {
		return Spectrum{}, ErrEmptyInput
	}
	if !(s.cfg.FWHM > 0) {
		return Spectrum{}, ErrInvalidFWHM
	}

	acc := lineshape.NewAccumulator(s.axis.Natural)

	switch s.cfg.Method {
	case MethodROA:
		if err := s.addROA(acc, modes); err != nil {
			return Spectrum{}, err
		}
	default:
		s.addVCD(acc, modes)
	}

	values, err := Normalize(acc.Values())
	if err != nil {
		return Spectrum{}, err
	}
	return Spectrum{Values: values, Wavenumber: s.axis.Wavenumber}, nil
}

// addROA places one Lorentzian per detected peak. The amplitude comes from
// the peak itself so it always belongs to the mode at the peak frequency.
func (s *Synthesizer) addROA(acc *lineshape.Accumulator, modes []mode.Mode) error {
	freq, obs := mode.Split(mode.SortedByFrequency(modes))
	peaks, err := peak.Find(obs, freq)
	if err != nil {
		return fmt.Errorf("synth: %w", err)
	}
	for _, p := range peaks {
		acc.AddLorentzian(p.Frequency, p.Amplitude, s.cfg.FWHM)
	}
	return nil
}

func (s *Synthesizer) addVCD(acc *lineshape.Accumulator, modes []mode.Mode) {
	w := s.cfg.FWHM
	prefactor := 1 / (VCDScale * math.Sqrt(math.Pi) * w)
	for _, m := range modes {
		acc.AddGaussian(m.Frequency, prefactor*m.Frequency*m.Observable, w)
	}
}

// Synthesize is a convenience wrapper that builds a one-off Synthesizer.
func Synthesize(modes []mode.Mode, ax axis.Axis, opts ...Option) (Spectrum, error) {
	return New(ax, opts...).Synthesize(modes)
}

// Normalize returns x divided by its maximum absolute value.
//
// ErrDegenerateSpectrum is returned when x is empty, identically zero or
// contains non-finite values.
func Normalize(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrDegenerateSpectrum
	}
	if floats.HasNaN(x) {
		return nil, ErrDegenerateSpectrum
	}
	maxAbs := floats.Norm(x, math.Inf(1))
	if maxAbs == 0 || math.IsInf(maxAbs, 0) {
		return nil, ErrDegenerateSpectrum
	}
	// Divide rather than scale by the reciprocal so the extremum maps to
	// exactly +-1.
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v / maxAbs
	}
	return out, nil
}
