// Package phase provides the shared trigonometric lookup table for 8-bit
// quantized phases.
//
// A phase byte p stands for the angle p/256 of a full turn. The table is the
// single source of truth for mapping angles to bytes and back: every compact
// value produced or consumed by this module goes through the same Table.
package phase

import (
	"math"
	"sync"
)

// Steps is the number of distinct quantized phases.
const Steps = 256

// Table is an immutable lookup table of 256 entries holding the fraction of a
// turn, the angle in radians and its sine and cosine.
type Table struct {
	fraction [Steps]float32
	radians  [Steps]float32
	sin      [Steps]float32
	cos      [Steps]float32
}

// Compute builds a fresh Table.
//
// Most callers want Get, which shares a single instance.
func Compute() *Table {
	t := &Table{}
	for i := range Steps {
		t.fraction[i] = float32(i) / Steps
		t.radians[i] = t.fraction[i] * (2 * math.Pi)
		t.sin[i] = float32(math.Sin(float64(t.radians[i])))
		t.cos[i] = float32(math.Cos(float64(t.radians[i])))
	}
	return t
}

var shared = sync.OnceValue(Compute)

// Get returns the process-wide Table, building it on first use.
// It is safe for concurrent use; the table is never modified afterwards.
func Get() *Table {
	return shared()
}

// Sin returns sin(p).
func (t *Table) Sin(p uint8) float32 { return t.sin[p] }

// Cos returns cos(p).
func (t *Table) Cos(p uint8) float32 { return t.cos[p] }

// Radians returns the angle of p in radians, in [0, 2π).
func (t *Table) Radians(p uint8) float32 { return t.radians[p] }

// Fraction returns the angle of p as a fraction of a full turn, in [0, 1).
func (t *Table) Fraction(p uint8) float32 { return t.fraction[p] }

// NearestPhase maps an angle in radians to the closest phase byte.
// Angles outside [0, 2π) wrap around.
func (t *Table) NearestPhase(radians float64) uint8 {
	x := math.Round(radians / float64(t.radians[1]))
	x = math.Mod(math.Mod(x, Steps)+Steps, Steps)
	return uint8(x)
}
