// Package pipeline wires loading, synthesis, the convergence sweep and the
// output artifacts into a single run.
package pipeline

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-vibspec/internal/config"
	"github.com/cwbudde/algo-vibspec/internal/dataio"
	"github.com/cwbudde/algo-vibspec/internal/render"
	"github.com/cwbudde/algo-vibspec/internal/report"
	"github.com/cwbudde/algo-vibspec/measure/convergence"
	"github.com/cwbudde/algo-vibspec/spectro/axis"
	"github.com/cwbudde/algo-vibspec/spectro/synth"
	"github.com/cwbudde/algo-vibspec/stats/spectral"
	"go.uber.org/zap"
)

// Pipeline runs one analysis.
type Pipeline struct {
	cfg *config.Config
	log *zap.Logger
}

// New returns a Pipeline for cfg. A nil logger discards output.
func New(cfg *config.Config, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, log: log}
}

// Run loads the input tables once, computes the converged spectrum, sweeps
// the snapshot cutoffs and writes every configured artifact.
func (p *Pipeline) Run(method synth.Method) (convergence.Result, error) {
	if err := p.cfg.Check(); err != nil {
		return convergence.Result{}, fmt.Errorf("pipeline: %w", err)
	}

	ax, err := axis.New(p.cfg.NumPoints)
	if err != nil {
		return convergence.Result{}, err
	}

	ds, err := dataio.LoadDataset(p.cfg.Path(p.cfg.Modes), p.cfg.Path(p.cfg.Energies))
	if err != nil {
		return convergence.Result{}, err
	}
	p.log.Info("loaded input",
		zap.String("method", string(method)),
		zap.Int("records", len(ds.Records)),
		zap.Int("snapshots", ds.Snapshots),
	)

	s := synth.New(ax, synth.WithMethod(method), synth.WithFWHM(p.cfg.FWHM))
	tr := convergence.NewTracker(s,
		convergence.WithStepSize(p.cfg.StepSize),
		convergence.WithFinalCutoff(p.cfg.IncludeFinal),
		convergence.WithProgress(func(cutoff int) {
			p.log.Info("collecting data for snapshots", zap.Int("cutoff", cutoff))
		}),
	)

	start := time.Now()
	conv, err := tr.Converged(ds)
	if err != nil {
		return convergence.Result{}, err
	}
	elapsed := time.Since(start)
	st, err := spectral.Calculate(conv.Values, conv.Wavenumber)
	if err != nil {
		return convergence.Result{}, err
	}
	p.log.Info("converged spectrum",
		zap.Duration("elapsed", elapsed),
		zap.Float64("maxAt", st.MaxAt),
		zap.Float64("minAt", st.MinAt),
		zap.Float64("centroid", st.Centroid),
		zap.Int("zeroCrossings", st.ZeroCrossings),
	)

	start = time.Now()
	res, err := tr.Sweep(ds, conv)
	if err != nil {
		return convergence.Result{}, err
	}
	p.log.Info("snapshot sweep",
		zap.Int("samples", len(res.Samples)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if len(res.Samples) == 0 {
		p.log.Warn("no sweep samples, skipping outputs",
			zap.Int("snapshots", ds.Snapshots),
			zap.Int("stepSize", p.cfg.StepSize),
		)
		return res, nil
	}
	if ds.Snapshots%p.cfg.StepSize != 0 && !p.cfg.IncludeFinal {
		p.log.Warn("sweep does not reach the full snapshot count",
			zap.Int("lastCutoff", res.Samples[len(res.Samples)-1].Cutoff),
			zap.Int("snapshots", ds.Snapshots),
		)
	}

	if err := p.writeOutputs(res, method); err != nil {
		return convergence.Result{}, err
	}
	return res, nil
}

func (p *Pipeline) writeOutputs(res convergence.Result, method synth.Method) error {
	outputs := []struct {
		name  string
		write func(path string) error
	}{
		{p.cfg.Report, func(path string) error { return report.WriteFile(path, res) }},
		{p.cfg.OverlapPlot, func(path string) error { return render.OverlapPlot(path, res) }},
		{p.cfg.ErrorPlot, func(path string) error { return render.ErrorPlot(path, res) }},
		{p.cfg.Animation, func(path string) error { return render.AnimationFile(path, res, method) }},
	}

	for _, out := range outputs {
		if out.name == "" {
			continue
		}
		path := p.cfg.Path(out.name)
		if err := out.write(path); err != nil {
			return fmt.Errorf("pipeline: %s: %w", path, err)
		}
		p.log.Info("wrote output", zap.String("path", path))
	}
	return nil
}
