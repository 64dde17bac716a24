// Package minio provides a BlobStore on MinIO and other S3-compatible
// servers (Ceph, Garage, SeaweedFS) through the MinIO client.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	blobs := minioblob.NewStore(client, "my-bucket", minioblob.WithPrefix("vectors/"))
//	repo := store.New(blobs)
//
// Unlike the s3 package it pulls in no AWS dependencies, which suits
// air-gapped deployments.
package minio
