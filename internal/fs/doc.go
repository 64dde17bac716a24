// Package fs abstracts the file system for testability and fault
// injection.
//
// Production code uses fs.Default, which is [LocalFS]. Tests wrap it in a
// [FaultyFS] to make writes, syncs, closes or renames of matching files
// fail:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp-", fs.Fault{FailAfterBytes: -1, FailOnSync: true})
//
// The interfaces carry no context.Context. Local file operations are not
// interruptible at the syscall level; remote stores take a context through
// blobstore.Blob instead.
package fs
