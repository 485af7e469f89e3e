// Package fs abstracts the file operations of the local blob store so tests
// can inject write, sync and rename failures.
//
// Production code uses Default (LocalFS). Tests wrap it in a FaultyFS:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("basis.kets", fs.Fault{FailAfterBytes: -1, FailOnSync: true})
//	store := blobstore.NewLocalStoreFS(dir, ffs)
package fs
