package dataio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vibspec/spectro/mode"
)

const sortedTable = "1\t1\t0.10\t2.5e-40\n" +
	"1\t2\t0.20\t-1.0e-40\n" +
	"\n" +
	"2.0\t1\t0.11\t3.0e-40\textra\n" +
	"3\t1\t0.30\t0\n"

func TestReadModes(t *testing.T) {
	got, err := ReadModes(strings.NewReader(sortedTable))
	if err != nil {
		t.Fatal(err)
	}
	want := []mode.Record{
		{Conformer: 1, Mode: mode.Mode{Frequency: 0.10, Observable: 2.5e-40}},
		{Conformer: 1, Mode: mode.Mode{Frequency: 0.20, Observable: -1.0e-40}},
		{Conformer: 2, Mode: mode.Mode{Frequency: 0.11, Observable: 3.0e-40}},
		{Conformer: 3, Mode: mode.Mode{Frequency: 0.30, Observable: 0}},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadModesMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line string
	}{
		{"short row", "1\t1\t0.1\t1\n2\t1\t0.2\n", "line 2"},
		{"bad conformer", "x\t1\t0.1\t1\n", "line 1"},
		{"fractional conformer", "1.5\t1\t0.1\t1\n", "line 1"},
		{"bad frequency", "1\t1\tabc\t1\n", "line 1"},
		{"nan observable", "1\t1\t0.1\tNaN\n", "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadModes(strings.NewReader(tt.in))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("error = %v, want ErrMalformed", err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Fatalf("error %q does not mention %q", err, tt.line)
			}
		})
	}
}

func TestReadModesEmpty(t *testing.T) {
	if _, err := ReadModes(strings.NewReader("\n\n")); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("error = %v, want ErrEmptyTable", err)
	}
}

func TestCountSnapshots(t *testing.T) {
	n, err := CountSnapshots(strings.NewReader("1\t-10.5\n2\t-11.0\n\n3\t-9.8\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("CountSnapshots = %d, want 3", n)
	}

	if _, err := CountSnapshots(strings.NewReader("")); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("error = %v, want ErrEmptyTable", err)
	}
	if _, err := CountSnapshots(strings.NewReader("1\n\t2\n")); !errors.Is(err, ErrMalformed) {
		t.Fatalf("error = %v, want ErrMalformed", err)
	}
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()
	modesPath := filepath.Join(dir, "Sorted.txt")
	energiesPath := filepath.Join(dir, "Combined_Free_Energy.txt")
	if err := os.WriteFile(modesPath, []byte(sortedTable), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(energiesPath, []byte("1\t0\n2\t0\n3\t0\n4\t0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := LoadDataset(modesPath, energiesPath)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Snapshots != 4 || len(ds.Records) != 4 {
		t.Fatalf("dataset = %d snapshots, %d records", ds.Snapshots, len(ds.Records))
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadDataset(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "also-missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want os.ErrNotExist", err)
	}
}
