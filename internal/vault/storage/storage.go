// Package storage abstracts the external object store holding ciphertext
// blobs. The vault core depends only on BlobStore; S3Store and MemoryStore
// are the two implementations.
package storage

import "context"

// BlobStore stores opaque byte blobs under server-assigned ids.
//
// Delete of an already-absent blob returns common.ErrNotFound; purge flows
// treat that as non-fatal because the record is the source of truth.
type BlobStore interface {
	Put(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, blobID string) ([]byte, error)
	Delete(ctx context.Context, blobID string) error
}
