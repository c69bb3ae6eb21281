// Package config holds the settings of an analysis run. Settings are read
// from an optional YAML file; every field has a default, so a run with no
// file behaves like the classic two-input-file analysis.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-vibspec/measure/convergence"
	"github.com/cwbudde/algo-vibspec/spectro/synth"
	"gopkg.in/yaml.v3"
)

// Config is the run configuration. It can be obtained through Default or
// Load, or built by hand; hand-built values should be validated with Check.
type Config struct {
	// Method is the spectroscopy method ("ROA" or "VCD"). When empty the
	// user is asked interactively.
	Method string `yaml:"method"`

	// Dir is the working directory input and output names are resolved
	// against.
	Dir string `yaml:"dir"`

	// Modes is the tab-delimited mode table (conformer, -, frequency, observable).
	Modes string `yaml:"modes"`

	// Energies is the tab-delimited free-energy table; its row count is the
	// snapshot count.
	Energies string `yaml:"energies"`

	// FWHM is the broadening width in eV.
	FWHM float64 `yaml:"fwhm"`

	// NumPoints is the number of frequency axis samples.
	NumPoints int `yaml:"numPoints"`

	// StepSize is the number of snapshots added per sweep step.
	StepSize int `yaml:"stepSize"`

	// IncludeFinal ends the sweep on the full snapshot count even when it
	// is not a multiple of StepSize.
	IncludeFinal bool `yaml:"includeFinal"`

	// Output names. An empty name disables that artifact.
	OverlapPlot string `yaml:"overlapPlot"`
	ErrorPlot   string `yaml:"errorPlot"`
	Animation   string `yaml:"animation"`
	Report      string `yaml:"report"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"logLevel"`
}

// Default returns the settings of the classic analysis.
func Default() Config {
	return Config{
		Dir:         ".",
		Modes:       "Sorted.txt",
		Energies:    "Combined_Free_Energy.txt",
		FWHM:        synth.DefaultFWHM,
		NumPoints:   synth.DefaultNumPoints,
		StepSize:    convergence.DefaultStepSize,
		OverlapPlot: "overlpa_plot.png",
		ErrorPlot:   "error_plot.png",
		Animation:   "animation.gif",
		Report:      "convergence.parquet",
		LogLevel:    "info",
	}
}

// Load decodes the YAML file at path on top of Default and checks the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := Default()
	dec := yaml.NewDecoder(bufio.NewReader(f))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &c, nil
}

// Check returns an error if a field doesn't meet the requirements.
func (c *Config) Check() error {
	if !(c.FWHM > 0) {
		return fmt.Errorf("fwhm must be positive, got %v", c.FWHM)
	}
	if c.NumPoints < 2 {
		return fmt.Errorf("numPoints must be at least 2, got %d", c.NumPoints)
	}
	if c.StepSize <= 0 {
		return fmt.Errorf("stepSize must be positive, got %d", c.StepSize)
	}
	if c.Modes == "" || c.Energies == "" {
		return fmt.Errorf("modes and energies files must be set")
	}
	return nil
}

// SynthMethod returns the configured method.
func (c *Config) SynthMethod() synth.Method {
	return synth.ParseMethod(c.Method)
}

// Path resolves name against Dir. Absolute names and empty names are
// returned unchanged.
func (c *Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}
