// Package resource bounds the resources spent on moving encoded bit vectors
// in and out of blob storage.
//
// A Controller governs three things:
//
//   - Memory: bytes held by read caches (non-blocking, fail-fast)
//   - Concurrency: in-flight blob operations (blocking, context-aware)
//   - IO: bytes per second read from or written to storage (token bucket)
//
// A nil *Controller is valid and imposes no limits, so callers never need
// to branch on whether limits were configured.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   64 << 20,
//	    MaxConcurrentIO:    8,
//	    IOLimitBytesPerSec: 32 << 20,
//	})
//	if err := rc.AcquireSlot(ctx); err != nil { ... }
//	defer rc.ReleaseSlot()
//	if err := rc.AcquireIO(ctx, len(data)); err != nil { ... }
package resource
