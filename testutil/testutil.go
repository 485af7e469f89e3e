package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/kets/compact"
	"github.com/hupe1980/kets/lossless"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillCentered fills dst with values 0.5 - U[0,1), i.e. in (-0.5, 0.5].
// Locks only once per call.
func (r *RNG) FillCentered(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fillCenteredLocked(dst)
}

func (r *RNG) fillCenteredLocked(dst []float64) {
	for i := range dst {
		dst[i] = 0.5 - r.rand.Float64()
	}
}

// LosslessKet returns a random ket whose components are drawn from
// FillCentered.
func (r *RNG) LosslessKet(width int) lossless.Ket {
	re := make([]float64, width)
	im := make([]float64, width)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fillCenteredLocked(re)
	r.fillCenteredLocked(im)

	return lossless.NewKet(re, im)
}

// LosslessBasis returns rank random kets of the given width in one backing
// array. The kets are linearly independent with probability one.
func (r *RNG) LosslessBasis(rank, width int) *lossless.Basis {
	data := make([]float64, 2*width*rank)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fillCenteredLocked(data)

	return lossless.NewBasis(data, width)
}

// OrthonormalBasis returns an orthonormalized LosslessBasis.
func (r *RNG) OrthonormalBasis(rank, width int) *lossless.Basis {
	return r.LosslessBasis(rank, width).Orthonormalize()
}

// CompactKet returns a random compact ket with magnitudes in [0, 1) and
// uniformly distributed phases.
func (r *RNG) CompactKet(width int) compact.Ket {
	abs := make([]float32, width)
	ph := make([]uint8, width)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fillPolarLocked(abs, ph)

	return compact.NewKet(abs, ph)
}

// CompactBasis returns rank random compact kets of the given width.
func (r *RNG) CompactBasis(rank, width int) *compact.Basis {
	abs := make([]float32, width*rank)
	ph := make([]uint8, width*rank)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fillPolarLocked(abs, ph)

	return compact.NewBasis(abs, ph, width)
}

func (r *RNG) fillPolarLocked(abs []float32, ph []uint8) {
	for i := range abs {
		abs[i] = r.rand.Float32()
		ph[i] = uint8(r.rand.Intn(256))
	}
}
