package phase

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Entries(t *testing.T) {
	table := Get()

	assert.Equal(t, float32(0), table.Radians(0))
	assert.Equal(t, float32(0), table.Fraction(0))
	assert.Equal(t, float32(1), table.Cos(0))
	assert.Equal(t, float32(0), table.Sin(0))

	assert.Equal(t, float32(0.5), table.Fraction(128))
	assert.InDelta(t, math.Pi, table.Radians(128), 1e-6)
	assert.InDelta(t, -1, table.Cos(128), 1e-6)

	assert.InDelta(t, 1, table.Sin(64), 1e-6)
	assert.InDelta(t, 0, table.Cos(64), 1e-6)
	assert.InDelta(t, -1, table.Sin(192), 1e-6)
}

func TestTable_UnitCircle(t *testing.T) {
	table := Get()
	for p := range Steps {
		b := uint8(p)
		c, s := float64(table.Cos(b)), float64(table.Sin(b))
		assert.InDelta(t, 1.0, c*c+s*s, 1e-6, "phase %d", p)
	}
}

func TestTable_NearestPhaseIdempotent(t *testing.T) {
	table := Get()
	for p := range Steps {
		b := uint8(p)
		require.Equal(t, b, table.NearestPhase(float64(table.Radians(b))), "phase %d", p)
	}
}

func TestTable_NearestPhase(t *testing.T) {
	table := Get()
	step := 2 * math.Pi / Steps

	tests := []struct {
		name    string
		radians float64
		want    uint8
	}{
		{"Zero", 0, 0},
		{"QuarterTurn", math.Pi / 2, 64},
		{"HalfTurn", math.Pi, 128},
		{"NegativeHalfTurn", -math.Pi, 128},
		{"NegativeQuarterTurn", -math.Pi / 2, 192},
		{"FullTurnWraps", 2 * math.Pi, 0},
		{"TwoTurns", 4*math.Pi + step, 1},
		{"JustBelowZero", -step, 255},
		{"RoundsDown", 0.4 * step, 0},
		{"RoundsUp", 0.6 * step, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.NearestPhase(tt.radians))
		})
	}
}

func TestGet_Shared(t *testing.T) {
	var wg sync.WaitGroup
	tables := make([]*Table, 16)
	for i := range tables {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tables[i] = Get()
		}()
	}
	wg.Wait()

	for _, tb := range tables {
		assert.Same(t, tables[0], tb)
	}
	assert.NotSame(t, Get(), Compute())
	assert.Equal(t, *Get(), *Compute())
}
