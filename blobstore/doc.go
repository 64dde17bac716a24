// Package blobstore provides the storage abstraction that encoded bit
// vectors are persisted to.
//
// A BlobStore holds immutable, named blobs. Writes replace a blob as a
// whole and are atomic; readers see either the old or the new content.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests
//   - LocalStore: local file system with atomic rename
//   - CachingStore: block cache in front of any other store
//   - s3.Store, s3.VersionedStore: Amazon S3, optionally with a DynamoDB
//     commit log
//   - minio.Store: MinIO and other S3-compatible servers
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Open must return an error satisfying errors.Is(err, ErrNotFound) for a
// missing blob. Delete of a missing blob succeeds.
package blobstore
