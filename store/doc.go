// Package store persists named bit vectors in a blobstore.BlobStore.
//
// A Repository encodes vectors with a codec.Codec and writes each one as a
// single blob "<name><ext>". Any BlobStore works: memory, local disk, S3,
// the DynamoDB-versioned S3 store or MinIO.
//
//	repo := store.New(blobstore.NewMemoryStore(),
//	    store.WithCodec(codec.Codec{Compression: codec.CompressionZSTD}),
//	    store.WithConcurrency(8),
//	)
//
//	if err := repo.Save(ctx, "users/active", v); err != nil {
//	    return err
//	}
//	v, err := repo.Load(ctx, "users/active")
//
// # Limits
//
// WithRateLimit caps the encoded bytes moved per second, WithMaxConcurrentIO
// caps the number of blob operations in flight, and WithMemoryLimit caps the
// encoded bytes held by in-flight operations. An operation that would exceed
// the memory limit fails fast with ErrMemoryLimitExceeded.
//
// A Repository is safe for concurrent use. The vectors it returns are
// independent of each other and of the stored blobs.
package store
