// Package render draws the convergence plots: overlap and sign-mismatch
// series as PNG files and the evolving spectrum as an animated GIF.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	imagedraw "image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/cwbudde/algo-vibspec/measure/convergence"
	"github.com/cwbudde/algo-vibspec/spectro/synth"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoSamples is returned when a sweep has nothing to plot.
var ErrNoSamples = errors.New("render: sweep has no samples")

// Figure geometry and styling.
const (
	seriesWidth     = 10 * vg.Inch
	seriesHeight    = 8 * vg.Inch
	animationWidth  = 8 * vg.Inch
	animationHeight = 6 * vg.Inch

	// FrameDelay is the per-frame delay of the animation in 1/100 s.
	FrameDelay = 100

	// MaxSignMismatches is the upper y limit of the sign-mismatch plot.
	MaxSignMismatches = 2000
)

var (
	convergedColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	partialColor   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

// OverlapPlot writes overlap versus snapshot count as a PNG to path.
func OverlapPlot(path string, res convergence.Result) error {
	if len(res.Samples) == 0 {
		return ErrNoSamples
	}

	p := plot.New()
	p.X.Label.Text = "Snapshot"
	p.Y.Label.Text = "Overlap"

	line, err := plotter.NewLine(series(res.Cutoffs(), res.Overlaps()))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	line.Color = partialColor
	p.Add(line)

	return p.Save(seriesWidth, seriesHeight, path)
}

// ErrorPlot writes the sign-mismatch count versus snapshot count as a PNG
// scatter plot to path. The y axis is fixed to [0, MaxSignMismatches].
func ErrorPlot(path string, res convergence.Result) error {
	if len(res.Samples) == 0 {
		return ErrNoSamples
	}

	counts := res.SignMismatches()
	y := make([]float64, len(counts))
	for i, c := range counts {
		y[i] = float64(c)
	}

	p := plot.New()
	p.X.Label.Text = "Snapshot"
	p.Y.Label.Text = "Number of wrong signs"

	sc, err := plotter.NewScatter(series(res.Cutoffs(), y))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	sc.GlyphStyle.Color = partialColor
	p.Add(sc)
	p.Y.Min = 0
	p.Y.Max = MaxSignMismatches

	return p.Save(seriesWidth, seriesHeight, path)
}

// Animation encodes one frame per sample as an animated GIF that plays
// once. The upper panel shows the partial spectrum over the converged one,
// the lower panel the error spectrum.
func Animation(w io.Writer, res convergence.Result, method synth.Method) error {
	if len(res.Samples) == 0 {
		return ErrNoSamples
	}

	anim := &gif.GIF{LoopCount: -1}
	for i := range res.Samples {
		img, err := frame(res, i, method)
		if err != nil {
			return err
		}
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, FrameDelay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// AnimationFile is Animation writing to path.
func AnimationFile(path string, res convergence.Result, method synth.Method) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return Animation(f, res, method)
}

func frame(res convergence.Result, i int, method synth.Method) (*image.Paletted, error) {
	s := res.Samples[i]

	top := plot.New()
	top.Title.Text = fmt.Sprintf("Snapshot: %d", s.Cutoff)
	top.X.Label.Text = "Frequency (cm-1)"
	top.Y.Label.Text = method.Label()

	partial, err := plotter.NewLine(spectrum(res.Wavenumber, s.Partial))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	partial.Color = partialColor

	converged, err := plotter.NewLine(spectrum(res.Wavenumber, res.Converged))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	converged.Color = convergedColor

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = color.Black

	top.Add(zero, partial, converged)
	top.Legend.Add("theoretical", partial)
	top.Legend.Add("Converged", converged)
	top.Legend.Top = true
	top.Y.Min, top.Y.Max = -1, 1

	bottom := plot.New()
	bottom.Title.Text = fmt.Sprintf("Overlap = %.2f", s.Overlap)
	bottom.X.Label.Text = "Frequency"
	bottom.Y.Label.Text = "Error"

	errLine, err := plotter.NewLine(spectrum(res.Wavenumber, s.Error))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	errLine.Color = partialColor
	bottom.Add(errLine)
	bottom.Y.Min, bottom.Y.Max = -1, 1

	// 3:1 split between the spectrum and error panels.
	c := vgimg.New(animationWidth, animationHeight)
	dc := draw.New(c)
	h := dc.Max.Y - dc.Min.Y
	top.Draw(draw.Crop(dc, 0, 0, h/4, 0))
	bottom.Draw(draw.Crop(dc, 0, 0, 0, -3*h/4))

	src := c.Image()
	bounds := src.Bounds()
	dst := image.NewPaletted(bounds, palette.Plan9)
	imagedraw.FloydSteinberg.Draw(dst, bounds, src, bounds.Min)
	return dst, nil
}

func series(x []int, y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = float64(x[i])
		xys[i].Y = y[i]
	}
	return xys
}

func spectrum(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys
}
