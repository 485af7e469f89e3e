package simd

import (
	"os"
	"strings"
)

// Kernels identifies one of the two kernel implementations.
type Kernels uint8

const (
	// Generic kernels sum terms strictly in index order.
	Generic Kernels = iota
	// Vectorized kernels use blocked multi-lane accumulation.
	Vectorized
)

// String returns "generic" or "vectorized".
func (k Kernels) String() string {
	switch k {
	case Generic:
		return "generic"
	case Vectorized:
		return "vectorized"
	default:
		return "unknown"
	}
}

// ParseKernels parses "generic" or "vectorized".
func ParseKernels(s string) (Kernels, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "vectorized":
		return Vectorized, true
	default:
		return Generic, false
	}
}

// EnvOverride names the environment variable that pins the kernels.
const EnvOverride = "KETS_SIMD"

var (
	active     Kernels
	overridden bool

	// Set by the platform init before initCapabilities runs.
	vectorFeature string
	hasVector     bool
)

func initCapabilities() {
	var want Kernels
	want, overridden = resolveKernels(os.Getenv(EnvOverride), hasVector)
	active = selectKernels(want)
}

// resolveKernels picks the kernels for a CPU with or without a usable vector
// unit. A valid env value wins unless it asks for vectorized kernels the CPU
// cannot run; anything else is ignored.
func resolveKernels(env string, vector bool) (k Kernels, fromEnv bool) {
	if vector {
		k = Vectorized
	}
	if env == "" {
		return k, false
	}
	if want, ok := ParseKernels(env); ok && (want == Generic || vector) {
		return want, true
	}
	return k, false
}

// Active returns the kernels in use.
func Active() Kernels { return active }

// Overridden reports whether KETS_SIMD selected the kernels.
func Overridden() bool { return overridden }

// VectorUnit returns the CPU feature the vectorized kernels rely on
// ("avx2+fma" or "asimd") and whether this CPU has it.
func VectorUnit() (feature string, ok bool) { return vectorFeature, hasVector }
