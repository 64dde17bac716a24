package blobstore

import (
	"context"
	"errors"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitvec/internal/cache"
)

// DefaultBlockSize is the cache block size used when none is given.
const DefaultBlockSize = 64 << 10

// CachingStore wraps a BlobStore and caches fixed-size blocks of the blobs
// read through it. It pays off for remote stores where each read is a
// round trip. Put and Delete invalidate the cached blocks of the name.
//
// Blocks are keyed by a per-name generation that Put and Delete advance.
// A blob opened before an overwrite keeps reading and caching under its old
// generation, which later Opens never look up.
type CachingStore struct {
	inner     BlobStore
	cache     *cache.LRU
	blockSize int64

	mu   sync.Mutex
	gens map[string]uint64
}

// NewCachingStore wraps inner with a cache of capacity bytes.
// blockSize defaults to DefaultBlockSize if <= 0.
func NewCachingStore(inner BlobStore, capacity, blockSize int64) *CachingStore {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &CachingStore{
		inner:     inner,
		cache:     cache.NewLRU(capacity, nil),
		blockSize: blockSize,
		gens:      make(map[string]uint64),
	}
}

func (s *CachingStore) generation(name string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[name]
}

func (s *CachingStore) advance(name string) {
	s.mu.Lock()
	s.gens[name]++
	s.mu.Unlock()
	s.cache.Invalidate(name)
}

// Open opens a blob whose reads go through the cache.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	// Captured before the inner open: a racing Put advances past it.
	gen := s.generation(name)

	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &cachingBlob{
		inner:     b,
		cache:     s.cache,
		name:      name,
		gen:       gen,
		blockSize: s.blockSize,
	}, nil
}

// Put writes through to the inner store.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.advance(name)
	err := s.inner.Put(ctx, name, data)
	// Opens that raced with the write may hold the old blob.
	s.advance(name)
	return err
}

// Delete deletes from the inner store.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.advance(name)
	err := s.inner.Delete(ctx, name)
	s.advance(name)
	return err
}

// List lists the inner store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns the cache hit and miss counts.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}

type cachingBlob struct {
	inner     Blob
	cache     *cache.LRU
	name      string
	gen       uint64
	blockSize int64
}

func (b *cachingBlob) key(block int64) cache.Key {
	return cache.Key{Path: b.name, Gen: b.gen, Block: block}
}

func (b *cachingBlob) Close() error {
	return b.inner.Close()
}

func (b *cachingBlob) Size() int64 {
	return b.inner.Size()
}

func (b *cachingBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	size := b.Size()
	if off >= size {
		return 0, io.EOF
	}

	end := min(off+int64(len(p)), size)
	first := off / b.blockSize
	last := (end - 1) / b.blockSize

	blocks, err := b.fetch(ctx, first, last)
	if err != nil {
		return 0, err
	}

	total := 0
	for i, data := range blocks {
		start := (first + int64(i)) * b.blockSize
		lo := max(start, off) - start
		hi := min(start+int64(len(data)), end) - start
		if hi <= lo {
			break
		}
		total += copy(p[total:], data[lo:hi])
	}

	if total < len(p) {
		return total, io.EOF
	}
	return total, nil
}

// fetch returns blocks first..last, reading contiguous runs of missing
// blocks from the inner blob in parallel.
func (b *cachingBlob) fetch(ctx context.Context, first, last int64) ([][]byte, error) {
	blocks := make([][]byte, last-first+1)

	type run struct{ start, count int64 }
	var missing []run
	for blk := first; blk <= last; blk++ {
		if data, ok := b.cache.Get(b.key(blk)); ok {
			blocks[blk-first] = data
			continue
		}
		if n := len(missing); n > 0 && missing[n-1].start+missing[n-1].count == blk {
			missing[n-1].count++
		} else {
			missing = append(missing, run{start: blk, count: 1})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(16)

	for _, r := range missing {
		g.Go(func() error {
			byteStart := r.start * b.blockSize
			byteSize := min(r.count*b.blockSize, b.Size()-byteStart)

			buf := make([]byte, byteSize)
			n, err := b.inner.ReadAt(gctx, buf, byteStart)
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			buf = buf[:n]

			for i := int64(0); i < r.count; i++ {
				lo := i * b.blockSize
				if lo >= int64(len(buf)) {
					break
				}
				hi := min(lo+b.blockSize, int64(len(buf)))

				// Copy so the cache does not pin the whole run.
				block := make([]byte, hi-lo)
				copy(block, buf[lo:hi])

				blocks[r.start-first+i] = block
				b.cache.Set(b.key(r.start+i), block)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}
