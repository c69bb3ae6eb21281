// Package report exports a convergence sweep as a Parquet table with one row
// per sweep step.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-vibspec/measure/convergence"
	parquet "github.com/parquet-go/parquet-go"
)

// Row is one sweep step.
type Row struct {
	Cutoff         int64     `parquet:"cutoff"`
	Overlap        float64   `parquet:"overlap"`
	SignMismatches int64     `parquet:"sign_mismatches"`
	Partial        []float64 `parquet:"partial"`
	Error          []float64 `parquet:"error"`
}

// Rows converts a sweep result into table rows.
func Rows(res convergence.Result) []Row {
	rows := make([]Row, len(res.Samples))
	for i, s := range res.Samples {
		rows[i] = Row{
			Cutoff:         int64(s.Cutoff),
			Overlap:        s.Overlap,
			SignMismatches: int64(s.SignMismatches),
			Partial:        s.Partial,
			Error:          s.Error,
		}
	}
	return rows
}

// Write encodes res as Snappy-compressed Parquet.
func Write(w io.Writer, res convergence.Result) error {
	pw := parquet.NewGenericWriter[Row](w, parquet.Compression(&parquet.Snappy))
	if _, err := pw.Write(Rows(res)); err != nil {
		_ = pw.Close()
		return fmt.Errorf("report: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// WriteFile writes res to path.
func WriteFile(path string, res convergence.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return Write(f, res)
}

// Read decodes every row of a table written by Write.
func Read(r io.ReaderAt) ([]Row, error) {
	gr := parquet.NewGenericReader[Row](r)
	defer gr.Close()

	rows := make([]Row, gr.NumRows())
	n, err := gr.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("report: %w", err)
	}
	return rows[:n], nil
}
