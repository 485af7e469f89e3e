//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	vectorFeature = "asimd"
	hasVector = cpu.ARM64.HasASIMD
	initCapabilities()
}
