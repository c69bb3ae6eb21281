// Package dataio reads the tab-delimited mode and free-energy tables that
// feed an analysis run.
package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-vibspec/spectro/mode"
)

// Column layout of the sorted mode table.
const (
	colConformer  = 0
	colFrequency  = 2
	colObservable = 3
)

// Errors returned while reading tables.
var (
	ErrEmptyTable = errors.New("dataio: table has no rows")
	ErrMalformed  = errors.New("dataio: malformed row")
)

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	cr.LazyQuotes = true
	return cr
}

// ReadModes parses a mode table: no header, one mode per row, conformer id
// in column 0, frequency in column 2 and observable in column 3. Other
// columns are ignored.
func ReadModes(r io.Reader) ([]mode.Record, error) {
	cr := newReader(r)

	var out []mode.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if len(row) <= colObservable {
			return nil, fmt.Errorf("%w: line %d: %d columns, need %d", ErrMalformed, line, len(row), colObservable+1)
		}
		conformer, err := parseConformer(row[colConformer])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: conformer: %v", ErrMalformed, line, err)
		}
		freq, err := parseFloat(row[colFrequency])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: frequency: %v", ErrMalformed, line, err)
		}
		obs, err := parseFloat(row[colObservable])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: observable: %v", ErrMalformed, line, err)
		}

		out = append(out, mode.Record{
			Conformer: conformer,
			Mode:      mode.Mode{Frequency: freq, Observable: obs},
		})
	}

	if len(out) == 0 {
		return nil, ErrEmptyTable
	}
	return out, nil
}

// CountSnapshots returns the number of rows of a free-energy table. Only
// column 0 is required to be present and non-empty.
func CountSnapshots(r io.Reader) (int, error) {
	cr := newReader(r)

	n := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("dataio: %w", err)
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			line, _ := cr.FieldPos(0)
			return 0, fmt.Errorf("%w: line %d: empty first column", ErrMalformed, line)
		}
		n++
	}

	if n == 0 {
		return 0, ErrEmptyTable
	}
	return n, nil
}

// LoadDataset reads the mode table at modesPath and the free-energy table
// at energiesPath into a Dataset.
func LoadDataset(modesPath, energiesPath string) (*mode.Dataset, error) {
	records, err := readFile(modesPath, ReadModes)
	if err != nil {
		return nil, err
	}
	snapshots, err := readFile(energiesPath, CountSnapshots)
	if err != nil {
		return nil, err
	}
	return &mode.Dataset{Records: records, Snapshots: snapshots}, nil
}

func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// parseConformer accepts integer ids and float literals with no fractional
// part, as written by tools that store ids as floats.
func parseConformer(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
