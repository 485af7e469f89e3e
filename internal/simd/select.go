//go:build !noasm

package simd

func selectKernels(k Kernels) Kernels {
	if k == Vectorized {
		useVectorized()
		return Vectorized
	}
	useGeneric()
	return Generic
}
