package spectral

import (
	"errors"
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	axis := []float64{0, 1, 2, 3, 4}
	values := []float64{0, 1, 0, -0.5, 0}

	s, err := Calculate(values, axis)
	if err != nil {
		t.Fatal(err)
	}
	if s.Points != 5 {
		t.Fatalf("Points = %d, want 5", s.Points)
	}
	if s.Max != 1 || s.MaxAt != 1 {
		t.Fatalf("Max = %v at %v, want 1 at 1", s.Max, s.MaxAt)
	}
	if s.Min != -0.5 || s.MinAt != 3 {
		t.Fatalf("Min = %v at %v, want -0.5 at 3", s.Min, s.MinAt)
	}
	// Trapezoid of [0, 1, 0, 0.25, 0] on unit spacing.
	if math.Abs(s.Energy-1.25) > 1e-15 {
		t.Fatalf("Energy = %v, want 1.25", s.Energy)
	}
	// (1*1 + 3*0.5) / 1.5
	if want := 2.5 / 1.5; math.Abs(s.Centroid-want) > 1e-15 {
		t.Fatalf("Centroid = %v, want %v", s.Centroid, want)
	}
	if s.ZeroCrossings != 1 {
		t.Fatalf("ZeroCrossings = %d, want 1", s.ZeroCrossings)
	}
	if s.Positive != 0.2 {
		t.Fatalf("Positive = %v, want 0.2", s.Positive)
	}
	if s.Spread <= 0 {
		t.Fatalf("Spread = %v, want > 0", s.Spread)
	}
}

func TestCalculateEdgeCases(t *testing.T) {
	s, err := Calculate(nil, nil)
	if err != nil || s.Points != 0 {
		t.Fatalf("empty: %+v, %v", s, err)
	}

	s, err = Calculate([]float64{0, 0}, []float64{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if s.Centroid != 0 || s.Spread != 0 || s.Energy != 0 {
		t.Fatalf("zero spectrum: %+v", s)
	}

	if _, err := Calculate([]float64{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
	if _, err := Centroid([]float64{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
}

func TestZeroCrossings(t *testing.T) {
	tests := []struct {
		in   []float64
		want int
	}{
		{nil, 0},
		{[]float64{1, 2, 3}, 0},
		{[]float64{1, -1, 1, -1}, 3},
		{[]float64{1, 0, 0, -1}, 1},
		{[]float64{0, -1, 0, -2}, 0},
	}
	for _, tt := range tests {
		if got := ZeroCrossings(tt.in); got != tt.want {
			t.Errorf("ZeroCrossings(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
