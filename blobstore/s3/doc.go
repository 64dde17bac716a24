// Package s3 stores encoded bit vectors in Amazon S3.
//
// # Usage
//
//	blobs, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("bitvectors/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//	if err != nil {
//	    return err
//	}
//	repo := store.New(blobs)
//
// # Features
//
//   - Ranged GetObject reads
//   - CRC32C-checked single PUTs, multipart uploads above the part size
//   - Paginated listing
//   - Prefix isolation for several repositories in one bucket
//
// # Versioned Store
//
// VersionedStore adds a DynamoDB commit log. Every Put writes a new object
// version and then commits it with a conditional write, so two writers
// racing on the same name cannot silently overwrite each other: the loser
// gets ErrConcurrentModification. Older versions stay readable with
// OpenVersion; PutIfVersion gives optimistic concurrency to callers that
// read before they write.
//
//	versioned := s3.NewVersionedStore(blobs, dynamodb.NewFromConfig(cfg),
//	    "bitvec-commits", "s3://my-bucket/bitvectors")
package s3
