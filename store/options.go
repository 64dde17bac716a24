package store

import (
	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/codec"
)

const (
	// DefaultExtension is appended to vector names to form blob names.
	DefaultExtension = ".bv"

	// DefaultConcurrency bounds the parallelism of SaveAll and LoadAll.
	DefaultConcurrency = 4
)

type options struct {
	codec       codec.Codec
	logger      *bitvec.Logger
	metrics     MetricsCollector
	concurrency int
	ext         string

	rateLimit   int64
	maxIO       int64
	memoryLimit int64

	cacheBytes     int64
	cacheBlockSize int64
}

// Option configures a Repository.
type Option func(*options)

func defaultOptions() options {
	return options{
		codec:       codec.Default,
		logger:      bitvec.NoopLogger(),
		metrics:     NoopMetricsCollector{},
		concurrency: DefaultConcurrency,
		ext:         DefaultExtension,
	}
}

// WithCodec sets the codec used to encode vectors. Default: codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithLogger sets the logger. nil restores the no-op logger.
func WithLogger(l *bitvec.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = bitvec.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector. nil restores the no-op
// collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithConcurrency bounds the number of vectors SaveAll and LoadAll process
// at once. Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = max(n, 1)
	}
}

// WithExtension sets the suffix appended to names to form blob names.
func WithExtension(ext string) Option {
	return func(o *options) {
		o.ext = ext
	}
}

// WithRateLimit caps storage throughput in encoded bytes per second.
// 0 means unlimited.
func WithRateLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.rateLimit = bytesPerSec
	}
}

// WithMaxConcurrentIO caps the number of blob operations in flight across
// all callers. 0 means unlimited.
func WithMaxConcurrentIO(n int64) Option {
	return func(o *options) {
		o.maxIO = n
	}
}

// WithMemoryLimit caps the encoded bytes held by in-flight operations.
// 0 means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithCache puts a block cache of capacity bytes in front of the blob
// store. blockSize 0 selects blobstore.DefaultBlockSize.
func WithCache(capacity, blockSize int64) Option {
	return func(o *options) {
		o.cacheBytes = capacity
		o.cacheBlockSize = blockSize
	}
}
