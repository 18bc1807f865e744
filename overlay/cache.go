package overlay

import (
	"encoding/binary"
	"slices"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	ptree "BIPTree/partitiontree"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ptree_lookup_cache_hits_total",
		Help: "Point lookups answered from the cache",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ptree_lookup_cache_misses_total",
		Help: "Point lookups that descended the tree",
	})
)

type lookup[V any] struct {
	version uint64
	coords  []int
	val     V
	ok      bool
}

// LookupCache memoises point lookups on a tree. Entries are keyed by the
// tree version, so any write to the tree makes earlier entries unreachable;
// ristretto evicts them in time.
type LookupCache[V ptree.Ordinal] struct {
	tree   *ptree.ValuePartitionTree[V]
	cache  *ristretto.Cache[uint64, lookup[V]]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewLookupCache caches up to maxEntries lookups against tree.
func NewLookupCache[V ptree.Ordinal](tree *ptree.ValuePartitionTree[V], maxEntries int64) (*LookupCache[V], error) {
	if maxEntries < 1 {
		maxEntries = 1
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, lookup[V]]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &LookupCache[V]{tree: tree, cache: cache}, nil
}

// Get returns the value at coords, from the cache when the tree has not
// changed since it was stored. Out-of-range coordinates are absent and never
// cached.
func (c *LookupCache[V]) Get(coords []int) (V, bool) {
	if !c.tree.Contains(coords) {
		var zero V
		return zero, false
	}
	coords = coords[:c.tree.Order()]
	version := c.tree.Version()
	key := c.key(version, coords)
	if e, found := c.cache.Get(key); found && e.version == version && slices.Equal(e.coords, coords) {
		c.hits.Add(1)
		cacheHits.Inc()
		return e.val, e.ok
	}

	c.misses.Add(1)
	cacheMisses.Inc()
	v, ok := c.tree.Get(coords)
	c.cache.Set(key, lookup[V]{
		version: version,
		coords:  slices.Clone(coords),
		val:     v,
		ok:      ok,
	}, 1)
	return v, ok
}

// Wait blocks until buffered writes to the cache are applied.
func (c *LookupCache[V]) Wait() {
	c.cache.Wait()
}

// Stats returns the hit and miss counts of this cache.
func (c *LookupCache[V]) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *LookupCache[V]) Close() {
	c.cache.Close()
}

func (c *LookupCache[V]) key(version uint64, coords []int) uint64 {
	var buf [8]byte
	d := xxhash.New()
	binary.LittleEndian.PutUint64(buf[:], version)
	d.Write(buf[:])
	for _, x := range coords {
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		d.Write(buf[:])
	}
	return d.Sum64()
}
