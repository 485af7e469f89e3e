//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	vectorFeature = "avx2+fma"
	hasVector = cpu.X86.HasAVX2 && cpu.X86.HasFMA
	initCapabilities()
}
