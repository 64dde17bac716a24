package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a memory reservation would exceed
// the configured limit.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits. Zero values mean unlimited.
type Config struct {
	// MemoryLimitBytes caps memory reserved through AcquireMemory.
	MemoryLimitBytes int64

	// MaxConcurrentIO caps the number of slots held at once.
	MaxConcurrentIO int64

	// IOLimitBytesPerSec caps storage throughput.
	IOLimitBytesPerSec int64
}

// Controller enforces a Config. It is safe for concurrent use.
type Controller struct {
	cfg Config

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	ioSem *semaphore.Weighted // nil if unlimited

	ioLimiter *rate.Limiter // nil if unlimited
}

// NewController creates a Controller for cfg.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}
	if cfg.MaxConcurrentIO > 0 {
		c.ioSem = semaphore.NewWeighted(cfg.MaxConcurrentIO)
	}
	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), burst(cfg.IOLimitBytesPerSec))
	}

	return c
}

// burst is one second of throughput, clamped to int.
func burst(perSec int64) int {
	const maxInt = int64(^uint(0) >> 1)
	if perSec > maxInt {
		return int(maxInt)
	}
	return int(perSec)
}

// AcquireMemory reserves bytes. It never blocks; it returns
// ErrMemoryLimitExceeded if the reservation does not fit.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil && !c.memSem.TryAcquire(bytes) {
		return ErrMemoryLimitExceeded
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory returns bytes reserved with AcquireMemory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the bytes currently reserved.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the memory limit (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// AcquireSlot blocks until an IO slot is free or ctx is done.
func (c *Controller) AcquireSlot(ctx context.Context) error {
	if c == nil || c.ioSem == nil {
		return ctx.Err()
	}
	return c.ioSem.Acquire(ctx, 1)
}

// TryAcquireSlot reserves an IO slot without blocking.
func (c *Controller) TryAcquireSlot() bool {
	if c == nil || c.ioSem == nil {
		return true
	}
	return c.ioSem.TryAcquire(1)
}

// ReleaseSlot frees a slot taken with AcquireSlot or TryAcquireSlot.
func (c *Controller) ReleaseSlot() {
	if c == nil || c.ioSem == nil {
		return
	}
	c.ioSem.Release(1)
}

// AcquireIO waits until the rate limit admits n bytes. Requests larger than
// the burst are admitted in burst-sized pieces.
func (c *Controller) AcquireIO(ctx context.Context, n int) error {
	if c == nil || c.ioLimiter == nil {
		return ctx.Err()
	}

	b := c.ioLimiter.Burst()
	for n > 0 {
		step := min(n, b)
		if err := c.ioLimiter.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
