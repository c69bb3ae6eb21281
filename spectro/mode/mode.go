// Package mode holds vibrational mode records and the conformer-tagged
// dataset they are accumulated from.
package mode

import (
	"errors"
	"sort"
)

// ErrInvalidCutoff is returned for non-positive conformer cutoffs.
var ErrInvalidCutoff = errors.New("mode: cutoff must be positive")

// Mode is one vibrational mode: its resonant frequency (eV) and its
// spectroscopic intensity (rotational strength, dipole strength or CID).
type Mode struct {
	Frequency  float64
	Observable float64
}

// Record is a Mode tagged with the conformer (snapshot) it came from.
type Record struct {
	Conformer int
	Mode
}

// Dataset is the full set of records of a run together with the number of
// snapshots that produced them. It is loaded once and never mutated.
type Dataset struct {
	Records   []Record
	Snapshots int
}

// Modes returns the modes of every record in input order.
func (d *Dataset) Modes() []Mode {
	out := make([]Mode, len(d.Records))
	for i, r := range d.Records {
		out[i] = r.Mode
	}
	return out
}

// UpTo returns the modes of all records whose conformer id is <= cutoff,
// in input order. Records need not be sorted by conformer.
func (d *Dataset) UpTo(cutoff int) ([]Mode, error) {
	if cutoff <= 0 {
		return nil, ErrInvalidCutoff
	}
	var out []Mode
	for _, r := range d.Records {
		if r.Conformer <= cutoff {
			out = append(out, r.Mode)
		}
	}
	return out, nil
}

// Conformers returns the distinct conformer ids present, ascending.
func (d *Dataset) Conformers() []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, r := range d.Records {
		if _, ok := seen[r.Conformer]; ok {
			continue
		}
		seen[r.Conformer] = struct{}{}
		ids = append(ids, r.Conformer)
	}
	sort.Ints(ids)
	return ids
}

// Scaled returns a copy of modes with every observable multiplied by s.
func Scaled(modes []Mode, s float64) []Mode {
	out := make([]Mode, len(modes))
	for i, m := range modes {
		out[i] = Mode{Frequency: m.Frequency, Observable: m.Observable * s}
	}
	return out
}

// SortedByFrequency returns a copy of modes in ascending frequency order.
// Modes with equal frequency keep their relative order.
func SortedByFrequency(modes []Mode) []Mode {
	out := append([]Mode(nil), modes...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frequency < out[j].Frequency
	})
	return out
}

// Split returns the frequency and observable columns of modes.
func Split(modes []Mode) (freq, obs []float64) {
	freq = make([]float64, len(modes))
	obs = make([]float64, len(modes))
	for i, m := range modes {
		freq[i] = m.Frequency
		obs[i] = m.Observable
	}
	return freq, obs
}
