package axis

import (
	"errors"
	"math"
	"testing"
)

func TestNewLengthAndRange(t *testing.T) {
	for _, n := range []int{2, 3, 7, 100, 2000, 4096} {
		ax, err := New(n)
		if err != nil {
			t.Fatalf("New(%d) error: %v", n, err)
		}
		if ax.Len() != n || len(ax.Wavenumber) != n {
			t.Fatalf("New(%d): got %d/%d samples", n, len(ax.Natural), len(ax.Wavenumber))
		}
		if ax.Natural[0] != MinFrequency {
			t.Fatalf("New(%d): first sample %v, want %v", n, ax.Natural[0], MinFrequency)
		}
		last := ax.Natural[n-1]
		if last >= MaxFrequency {
			t.Fatalf("New(%d): last sample %v not below %v", n, last, MaxFrequency)
		}
		want := MaxFrequency * float64(n-1) / float64(n)
		if math.Abs(last-want) > 1e-12 {
			t.Fatalf("New(%d): last sample %v, want %v", n, last, want)
		}
	}
}

func TestNewUniformSpacing(t *testing.T) {
	ax, err := New(2000)
	if err != nil {
		t.Fatal(err)
	}
	step := ax.Step()
	if math.Abs(step-MaxFrequency/2000) > 1e-15 {
		t.Fatalf("Step = %v, want %v", step, MaxFrequency/2000)
	}
	for i := 1; i < ax.Len(); i++ {
		d := ax.Natural[i] - ax.Natural[i-1]
		if math.Abs(d-step) > 1e-12 {
			t.Fatalf("spacing at %d = %v, want %v", i, d, step)
		}
	}
}

func TestNewWavenumberConversion(t *testing.T) {
	ax, err := New(10)
	if err != nil {
		t.Fatal(err)
	}
	for i := range ax.Natural {
		want := ax.Natural[i] * EVToWavenumber
		if math.Abs(ax.Wavenumber[i]-want) > 1e-9 {
			t.Fatalf("Wavenumber[%d] = %v, want %v", i, ax.Wavenumber[i], want)
		}
	}
	// The grid tops out just below 4000 cm^-1.
	if top := MaxFrequency * EVToWavenumber; math.Abs(top-4000) > 0.01 {
		t.Fatalf("upper bound = %v cm^-1, want ~4000", top)
	}
}

func TestNewTooFewPoints(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := New(n); !errors.Is(err, ErrTooFewPoints) {
			t.Fatalf("New(%d) error = %v, want ErrTooFewPoints", n, err)
		}
	}
}
