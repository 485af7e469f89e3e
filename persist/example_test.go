package persist_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/kets/blobstore"
	"github.com/hupe1980/kets/lossless"
	"github.com/hupe1980/kets/persist"
)

func ExampleSaveLossless() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	b := lossless.Empty(3)
	b.Insert([]float64{1, 0, 0}, []float64{0, 0, 0})
	b.Insert([]float64{0, 1, 0}, []float64{0, 0, 0})

	if err := persist.SaveLossless(ctx, store, "basis.kets", b, persist.WithCompression(persist.CompressionLZ4)); err != nil {
		panic(err)
	}

	f, err := persist.Load(ctx, store, "basis.kets")
	if err != nil {
		panic(err)
	}
	fmt.Println(f.Header.Kind, f.Rank(), f.Width(), f.Header.Codec)
	// Output:
	// lossless 2 3 msgpack
}
