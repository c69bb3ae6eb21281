package peak

import (
	"errors"
	"reflect"
	"testing"
)

func TestFindTwoPeaks(t *testing.T) {
	peaks, err := Find([]float64{0, 1, 0, 2, 0}, []float64{10, 20, 30, 40, 50})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Frequencies(peaks), []float64{20, 40}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Frequencies = %v, want %v", got, want)
	}
	want := []Peak{{Index: 1, Frequency: 20, Amplitude: 1}, {Index: 3, Frequency: 40, Amplitude: 2}}
	if !reflect.DeepEqual(peaks, want) {
		t.Fatalf("Find = %+v, want %+v", peaks, want)
	}
}

func TestFindNoPeaks(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
	}{
		{"empty", nil},
		{"single", []float64{3}},
		{"pair", []float64{1, 2}},
		{"flat", []float64{1, 1, 1, 1}},
		{"increasing", []float64{1, 2, 3, 4}},
		{"decreasing", []float64{4, 3, 2, 1}},
		{"plateau", []float64{0, 2, 2, 0}},
		{"endpoints", []float64{5, 1, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			peaks, err := Find(tt.in, make([]float64, len(tt.in)))
			if err != nil {
				t.Fatal(err)
			}
			if len(peaks) != 0 {
				t.Fatalf("Find(%v) = %+v, want no peaks", tt.in, peaks)
			}
		})
	}
}

func TestFindNegativePeaks(t *testing.T) {
	peaks, err := Find([]float64{-5, -1, -3, -4, -2, -6}, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Frequencies(peaks), []float64{2, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Frequencies = %v, want %v", got, want)
	}
}

func TestFindKeepsIndexOrder(t *testing.T) {
	peaks, err := Find([]float64{0, 3, 0, 1, 0}, []float64{0.5, 0.4, 0.3, 0.2, 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Frequencies(peaks), []float64{0.4, 0.2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Frequencies = %v, want %v", got, want)
	}
}

func TestFindLengthMismatch(t *testing.T) {
	if _, err := Find([]float64{1, 2, 1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
}
