// Package cache provides a byte-bounded LRU cache for blob blocks.
//
// Entries are fixed-size blocks of immutable blobs, keyed by blob name and
// block index. Memory can additionally be charged to a resource.Controller,
// in which case a block is only admitted if the controller grants it.
package cache
