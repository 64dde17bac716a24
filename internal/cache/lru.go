package cache

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/bitvec/internal/resource"
)

// Key identifies a block of a blob. Gen distinguishes successive contents
// stored under the same Path.
type Key struct {
	Path  string
	Gen   uint64
	Block int64
}

// LRU is a least-recently-used block cache bounded by total bytes.
// Returned slices must be treated as read-only.
type LRU struct {
	mu        sync.Mutex
	capacity  int64
	size      int64
	items     map[Key]*list.Element
	evictList *list.List
	rc        *resource.Controller

	hits   atomic.Int64
	misses atomic.Int64
}

type entry struct {
	key   Key
	value []byte
}

// NewLRU creates a cache holding at most capacity bytes. rc may be nil.
func NewLRU(capacity int64, rc *resource.Controller) *LRU {
	return &LRU{
		capacity:  capacity,
		items:     make(map[Key]*list.Element),
		evictList: list.New(),
		rc:        rc,
	}
}

// Get returns a cached block.
func (c *LRU) Get(key Key) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		c.hits.Add(1)
		c.evictList.MoveToFront(ent)
		return ent.Value.(*entry).value, true
	}
	c.misses.Add(1)
	return nil, false
}

// Set caches a block. The cache retains b; the caller must not modify it.
// Blocks larger than the capacity, or refused by the controller, are
// dropped.
func (c *LRU) Set(key Key, b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		c.removeElement(ent)
	}

	n := int64(len(b))
	if n > c.capacity {
		return
	}

	// Evict locally first so released memory is back in the controller.
	for c.size+n > c.capacity {
		back := c.evictList.Back()
		if back == nil {
			break
		}
		c.removeElement(back)
	}

	if err := c.rc.AcquireMemory(n); err != nil {
		return
	}

	c.items[key] = c.evictList.PushFront(&entry{key: key, value: b})
	c.size += n
}

// Invalidate removes every block of the blob at path, of every generation.
func (c *LRU) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var doomed []*list.Element
	for key, element := range c.items {
		if key.Path == path {
			doomed = append(doomed, element)
		}
	}
	for _, e := range doomed {
		c.removeElement(e)
	}
}

// Stats returns the hit and miss counts.
func (c *LRU) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Size returns the bytes currently cached.
func (c *LRU) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Len returns the number of cached blocks.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *LRU) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(c.items, kv.key)

	n := int64(len(kv.value))
	c.size -= n
	c.rc.ReleaseMemory(n)
}
