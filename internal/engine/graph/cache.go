package graph

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/abvthecity/oxiclean/internal/core/domain"
)

const shardCount = 64

// Cache is a concurrent map split into shards selected by an xxhash of the key.
// Entries are never evicted, and the first value stored for a key is the only one
// any reader observes.
type Cache[K comparable, V any] struct {
	hash   func(K) uint64
	shards [shardCount]shard[K, V]
}

type shard[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// NewCache creates an empty cache using hash to pick a shard.
func NewCache[K comparable, V any](hash func(K) uint64) *Cache[K, V] {
	c := &Cache[K, V]{hash: hash}
	for i := range c.shards {
		c.shards[i].m = make(map[K]V)
	}
	return c
}

func (c *Cache[K, V]) shardFor(key K) *shard[K, V] {
	return &c.shards[c.hash(key)%shardCount]
}

// Load returns the value stored for key.
func (c *Cache[K, V]) Load(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

// LoadOrStore stores value unless key is already present. It returns the value that is
// now in the cache and whether it was already there.
func (c *Cache[K, V]) LoadOrStore(key K, value V) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.m[key]; ok {
		return existing, true
	}
	s.m[key] = value
	return value, false
}

// Len returns the number of keys across all shards.
func (c *Cache[K, V]) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.m)
		s.mu.RUnlock()
	}
	return n
}

// HashString hashes a path key.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// ResolveKey identifies one resolution: a request as written in a given importing file.
type ResolveKey struct {
	From    string
	Request string
}

// HashResolveKey hashes both fields of a ResolveKey.
func HashResolveKey(k ResolveKey) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(k.From)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(k.Request)
	return d.Sum64()
}

// Set is a set of canonical file paths.
type Set = map[string]struct{}

// Caches holds the memo tables shared by every task of a single run.
type Caches struct {
	// Imports maps a file to its extracted specifiers.
	Imports *Cache[string, []domain.Specifier]
	// Resolutions maps (file, request) to the resolved path; "" records an unresolved request.
	Resolutions *Cache[ResolveKey, string]
	// Reachable maps a start file to its closure, itself included.
	Reachable *Cache[string, Set]
	// Depths maps a file to its cycle-truncated import depth.
	Depths *Cache[string, int]
}

// NewCaches creates the empty caches for one run.
func NewCaches() *Caches {
	return &Caches{
		Imports:     NewCache[string, []domain.Specifier](HashString),
		Resolutions: NewCache[ResolveKey, string](HashResolveKey),
		Reachable:   NewCache[string, Set](HashString),
		Depths:      NewCache[string, int](HashString),
	}
}
