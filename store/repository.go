package store

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/codec"
	"github.com/hupe1980/bitvec/internal/resource"
)

// Repository saves and loads named bit vectors.
type Repository struct {
	blobs       blobstore.BlobStore
	codec       codec.Codec
	logger      *bitvec.Logger
	metrics     MetricsCollector
	rc          *resource.Controller
	concurrency int
	ext         string
}

// New creates a Repository on blobs.
func New(blobs blobstore.BlobStore, opts ...Option) *Repository {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.cacheBytes > 0 {
		blobs = blobstore.NewCachingStore(blobs, o.cacheBytes, o.cacheBlockSize)
	}

	return &Repository{
		blobs:   blobs,
		codec:   o.codec,
		logger:  o.logger,
		metrics: o.metrics,
		rc: resource.NewController(resource.Config{
			MemoryLimitBytes:   o.memoryLimit,
			MaxConcurrentIO:    o.maxIO,
			IOLimitBytesPerSec: o.rateLimit,
		}),
		concurrency: o.concurrency,
		ext:         o.ext,
	}
}

// ValidateName reports whether name can be stored.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case strings.HasPrefix(name, "/"):
		return fmt.Errorf("%w: %q has a leading slash", ErrInvalidName, name)
	case slices.Contains(strings.Split(name, "/"), ".."):
		return fmt.Errorf("%w: %q contains \"..\"", ErrInvalidName, name)
	}
	return nil
}

func (r *Repository) blobName(name string) string {
	return name + r.ext
}

// Save encodes v and stores it under name, replacing any previous vector.
func (r *Repository) Save(ctx context.Context, name string, v *bitvec.BitVector) error {
	start := time.Now()
	size, err := r.save(ctx, name, v)

	elapsed := time.Since(start)
	r.metrics.RecordSave(size, elapsed, err)
	r.logger.LogSave(ctx, name, v.Len(), size, elapsed, err)
	return opError("save", name, err)
}

func (r *Repository) save(ctx context.Context, name string, v *bitvec.BitVector) (int, error) {
	if err := ValidateName(name); err != nil {
		return 0, err
	}

	data, err := r.codec.Marshal(v)
	if err != nil {
		return 0, err
	}

	release, err := r.acquire(ctx, len(data))
	if err != nil {
		return 0, err
	}
	defer release()

	if err := r.blobs.Put(ctx, r.blobName(name), data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// Load returns the vector stored under name. It returns an error wrapping
// ErrNotFound if there is none.
func (r *Repository) Load(ctx context.Context, name string) (*bitvec.BitVector, error) {
	start := time.Now()
	v, size, err := r.load(ctx, name)

	elapsed := time.Since(start)
	r.metrics.RecordLoad(size, elapsed, err)
	bits := 0
	if v != nil {
		bits = v.Len()
	}
	r.logger.LogLoad(ctx, name, bits, elapsed, err)
	return v, opError("load", name, err)
}

func (r *Repository) read(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	b, err := r.blobs.Open(ctx, r.blobName(name))
	if err != nil {
		return nil, err
	}
	defer b.Close()

	release, err := r.acquire(ctx, int(b.Size()))
	if err != nil {
		return nil, err
	}
	defer release()

	return blobstore.ReadAll(ctx, b)
}

func (r *Repository) load(ctx context.Context, name string) (*bitvec.BitVector, int, error) {
	data, err := r.read(ctx, name)
	if err != nil {
		return nil, 0, err
	}

	v, err := r.codec.Unmarshal(data)
	if err != nil {
		return nil, len(data), err
	}
	return v, len(data), nil
}

// Stat returns the frame header of the vector stored under name without
// decoding its payload.
func (r *Repository) Stat(ctx context.Context, name string) (codec.Info, error) {
	data, err := r.read(ctx, name)
	if err != nil {
		return codec.Info{}, opError("stat", name, err)
	}
	info, err := codec.Inspect(data)
	return info, opError("stat", name, err)
}

// Delete removes the vector stored under name. Deleting a missing vector
// is not an error.
func (r *Repository) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := ValidateName(name)
	if err == nil {
		err = r.withSlot(ctx, func() error {
			return r.blobs.Delete(ctx, r.blobName(name))
		})
	}

	r.metrics.RecordDelete(time.Since(start), err)
	r.logger.LogDelete(ctx, name, err)
	return opError("delete", name, err)
}

// Exists reports whether a vector is stored under name.
func (r *Repository) Exists(ctx context.Context, name string) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, opError("exists", name, err)
	}

	b, err := r.blobs.Open(ctx, r.blobName(name))
	if errors.Is(err, blobstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, opError("exists", name, err)
	}
	return true, b.Close()
}

// List returns the names of the stored vectors that start with prefix,
// sorted. Blobs without the repository's extension are skipped.
func (r *Repository) List(ctx context.Context, prefix string) ([]string, error) {
	var blobs []string
	err := r.withSlot(ctx, func() error {
		var err error
		blobs, err = r.blobs.List(ctx, prefix)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("store: list %q: %w", prefix, err)
	}

	names := make([]string, 0, len(blobs))
	for _, b := range blobs {
		if name, ok := strings.CutSuffix(b, r.ext); ok && name != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// SaveAll saves every vector in vectors with bounded parallelism. It
// returns the first error; the remaining saves are cancelled.
func (r *Repository) SaveAll(ctx context.Context, vectors map[string]*bitvec.BitVector) error {
	start := time.Now()
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, name := range slices.Sorted(maps.Keys(vectors)) {
		v := vectors[name]
		g.Go(func() error {
			if err := r.Save(gctx, name, v); err != nil {
				failed.Add(1)
				return err
			}
			return nil
		})
	}
	err := g.Wait()

	r.finishBatch(ctx, "save", len(vectors), int(failed.Load()), start)
	return err
}

// LoadAll loads the named vectors with bounded parallelism. It returns the
// first error; the remaining loads are cancelled.
func (r *Repository) LoadAll(ctx context.Context, names []string) (map[string]*bitvec.BitVector, error) {
	start := time.Now()
	var failed atomic.Int64

	results := make([]*bitvec.BitVector, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, name := range names {
		g.Go(func() error {
			v, err := r.Load(gctx, name)
			if err != nil {
				failed.Add(1)
				return err
			}
			results[i] = v
			return nil
		})
	}
	err := g.Wait()

	r.finishBatch(ctx, "load", len(names), int(failed.Load()), start)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*bitvec.BitVector, len(names))
	for i, name := range names {
		out[name] = results[i]
	}
	return out, nil
}

func (r *Repository) finishBatch(ctx context.Context, op string, count, failed int, start time.Time) {
	r.metrics.RecordBatch(count, failed, time.Since(start))
	r.logger.LogBatch(ctx, op, count, failed)
}

// acquire reserves memory, an IO slot and rate budget for n bytes.
func (r *Repository) acquire(ctx context.Context, n int) (func(), error) {
	if err := r.rc.AcquireMemory(int64(n)); err != nil {
		return nil, fmt.Errorf("%w: %d bytes", err, n)
	}
	if err := r.rc.AcquireSlot(ctx); err != nil {
		r.rc.ReleaseMemory(int64(n))
		return nil, err
	}
	if err := r.rc.AcquireIO(ctx, n); err != nil {
		r.rc.ReleaseSlot()
		r.rc.ReleaseMemory(int64(n))
		return nil, err
	}
	return func() {
		r.rc.ReleaseSlot()
		r.rc.ReleaseMemory(int64(n))
	}, nil
}

func (r *Repository) withSlot(ctx context.Context, fn func() error) error {
	if err := r.rc.AcquireSlot(ctx); err != nil {
		return err
	}
	defer r.rc.ReleaseSlot()
	return fn()
}
