//go:build noasm

package simd

func selectKernels(Kernels) Kernels {
	useGeneric()
	return Generic
}
