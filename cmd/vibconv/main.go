// Command vibconv analyzes the convergence of a snapshot-averaged VCD or
// ROA spectrum.
//
// Usage:
//
//	vibconv [flags]
//
// It reads Sorted.txt (conformer, -, frequency, observable) and
// Combined_Free_Energy.txt (one row per snapshot) from the working
// directory, then writes overlpa_plot.png, error_plot.png, animation.gif
// and convergence.parquet. When no method is configured the user is
// prompted for one; "ROA" selects Raman optical activity, anything else
// vibrational circular dichroism.
//
// Examples:
//
//	vibconv
//	vibconv -method ROA -dir ./run1
//	vibconv -config run.yaml -step 25
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-vibspec/internal/config"
	"github.com/cwbudde/algo-vibspec/internal/logging"
	"github.com/cwbudde/algo-vibspec/internal/pipeline"
	"github.com/cwbudde/algo-vibspec/spectro/synth"
	"go.uber.org/zap"
)

const methodPrompt = "Enter the spectroscopy method used : "

func main() {
	cfgPath := flag.String("config", "", "YAML configuration file")
	method := flag.String("method", "", "spectroscopy method (ROA or VCD); prompted for when unset")
	dir := flag.String("dir", "", "directory holding the input tables and receiving the outputs")
	step := flag.Int("step", 0, "snapshots added per sweep step")
	final := flag.Bool("final", false, "end the sweep on the full snapshot count")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vibconv [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Tracks the convergence of a snapshot-averaged VCD/ROA spectrum.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *method != "" {
		cfg.Method = *method
	}
	if *dir != "" {
		cfg.Dir = *dir
	}
	if *step > 0 {
		cfg.StepSize = *step
	}
	if *final {
		cfg.IncludeFinal = true
	}

	log := logging.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if strings.TrimSpace(cfg.Method) == "" {
		cfg.Method, err = prompt(os.Stdin, os.Stdout)
		if err != nil {
			log.Fatal("reading method", zap.Error(err))
		}
	}

	if _, err := pipeline.New(cfg, log).Run(synth.ParseMethod(cfg.Method)); err != nil {
		log.Fatal("analysis failed", zap.Error(err))
	}
	log.Info("done")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		c := config.Default()
		return &c, nil
	}
	return config.Load(path)
}

// prompt asks for the spectroscopy method and returns the answer without
// validation. An empty answer at end of input is not an error.
func prompt(r io.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, methodPrompt); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
