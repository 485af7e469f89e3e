package compact

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kets"
)

func requireInvalidLayout(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		var il *kets.ErrInvalidLayout
		assert.True(t, errors.As(r.(error), &il), "got %v", r)
	}()
	fn()
}

func TestNewBasis(t *testing.T) {
	b := NewBasis([]float32{1, 2, 3, 4, 5, 6}, []uint8{1, 2, 3, 4, 5, 6}, 3)
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.Rank())

	k := b.Ket(1)
	assert.Equal(t, []float32{4, 5, 6}, k.Abs())
	assert.Equal(t, []uint8{4, 5, 6}, k.Phase())
}

func TestNewBasis_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		abs   []float32
		phase []uint8
		width int
	}{
		{"ZeroWidth", nil, nil, 0},
		{"NegativeWidth", nil, nil, -1},
		{"ParallelLengths", []float32{1, 2}, []uint8{1}, 1},
		{"NotMultiple", []float32{1, 2, 3}, []uint8{1, 2, 3}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireInvalidLayout(t, func() { NewBasis(tt.abs, tt.phase, tt.width) })

			err := RawBasis{Width: tt.width, Abs: tt.abs, Phase: tt.phase}.Check()
			require.Error(t, err)
			assert.ErrorIs(t, err, kets.ErrPrecondition)
		})
	}
}

func TestBasis_Insert(t *testing.T) {
	b := Empty(2)
	assert.Equal(t, 0, b.Rank())

	b.Insert([]float32{1, 2}, []uint8{3, 4})
	b.InsertKet(NewKet([]float32{5, 6}, []uint8{7, 8}))
	assert.Equal(t, 2, b.Rank())
	assert.Equal(t, Polar{Abs: 6, Phase: 8}, b.Ket(1).At(1))

	requireLengthMismatch(t, func() { b.Insert([]float32{1}, []uint8{1}) })
	requireLengthMismatch(t, func() { b.Insert([]float32{1, 2}, []uint8{1}) })
}

func TestBasis_Iteration(t *testing.T) {
	b := NewBasis([]float32{1, 2, 3}, []uint8{0, 0, 0}, 1)

	for pass := range 2 {
		var idx []int
		var first []float32
		for i, k := range b.All() {
			idx = append(idx, i)
			first = append(first, k.At(0).Abs)
		}
		assert.Equal(t, []int{0, 1, 2}, idx, "pass %d", pass)
		assert.Equal(t, []float32{1, 2, 3}, first, "pass %d", pass)
	}
}

func TestBasis_KetSharesStorage(t *testing.T) {
	abs := []float32{1, 2}
	b := NewBasis(abs, []uint8{0, 0}, 2)
	abs[0] = 7
	assert.Equal(t, float32(7), b.Ket(0).At(0).Abs)
}

func TestBasis_RawRoundTrip(t *testing.T) {
	b := NewBasis([]float32{1, 2, 3, 4}, []uint8{9, 8, 7, 6}, 2)
	raw := b.Clone().Raw()
	assert.Equal(t, 2, raw.Width)
	require.NoError(t, raw.Check())

	back := raw.Validate()
	assert.True(t, b.Equal(back))
	assert.False(t, b.Equal(Empty(2)))
}

func TestOverlapMatrix(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	a, b := Empty(16), Empty(16)
	for range 5 {
		a.InsertKet(randomKet(rng, 16))
	}
	for range 3 {
		b.InsertKet(randomKet(rng, 16))
	}

	seq := OverlapMatrix(a, b, 1)
	par := OverlapMatrix(a, b, 4)
	require.Len(t, seq, 5)
	for i := range seq {
		require.Len(t, seq[i], 3)
		for j := range seq[i] {
			assert.Equal(t, a.Ket(i).Overlap(b.Ket(j)), seq[i][j])
		}
	}
	assert.Equal(t, seq, par)

	requireLengthMismatch(t, func() { OverlapMatrix(a, Empty(3), 1) })
}

func TestBasis_IsOrthonormal(t *testing.T) {
	ortho := NewBasis([]float32{1, 0, 0, 1}, []uint8{0, 0, 0, 77}, 2)
	assert.True(t, ortho.IsOrthonormal(1e-6))

	dup := NewBasis([]float32{1, 0, 1, 0}, []uint8{0, 0, 0, 0}, 2)
	assert.False(t, dup.IsOrthonormal(1e-6))

	unnormalized := NewBasis([]float32{2, 0}, []uint8{0, 0}, 2)
	assert.False(t, unnormalized.IsOrthonormal(1e-6))
}
