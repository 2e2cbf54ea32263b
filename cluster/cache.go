package cluster

import (
	"encoding/binary"

	"github.com/biogo/store/llrb"
	farm "github.com/dgryski/go-farm"
)

// otherID is an llrb.Comparable wrapping the "other side" of a cached
// region pair, used as the element type of potentialCache.byID's
// per-region reverse index.
type otherID int64

// Compare implements llrb.Comparable.
func (o otherID) Compare(c llrb.Comparable) int {
	o2 := c.(otherID)
	switch {
	case o < o2:
		return -1
	case o > o2:
		return 1
	default:
		return 0
	}
}

// potentialCache is a sparse symmetric store of region-pair potentials.
// Only pairs formed while merging into a "large" region (Members count
// over the configured threshold) are stored; everything else is
// recomputed on demand. A cache miss and a tombstoned (invalidated)
// entry are indistinguishable to callers.
//
// The cache keys region pairs by a 64-bit hash of their ordered
// (min id, max id) pair, the way fusion's kmer index hashes its keys
// (github.com/dgryski/go-farm), rather than by the pair itself; a
// per-id llrb.Tree reverse index (github.com/biogo/store/llrb) tracks
// which "other" ids are currently cached against a given id, so that
// invalidation on merge touches only the affected entries instead of
// scanning the whole cache.
type potentialCache struct {
	threshold int

	values map[uint64]float64
	byID   map[int64]*llrb.Tree
}

func newPotentialCache(threshold int) *potentialCache {
	return &potentialCache{
		threshold: threshold,
		values:    make(map[uint64]float64),
		byID:      make(map[int64]*llrb.Tree),
	}
}

func normalizeIDs(a, b int64) (int64, int64) {
	if a <= b {
		return a, b
	}
	return b, a
}

func pairHash(a, b int64) uint64 {
	lo, hi := normalizeIDs(a, b)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(hi))
	return farm.Hash64WithSeed(buf[:], uint64(lo))
}

// lookup returns the cached potential for the pair (a, b), if any.
func (c *potentialCache) lookup(a, b int64) (float64, bool) {
	v, ok := c.values[pairHash(a, b)]
	return v, ok
}

// shouldStore reports whether a pair formed while merging into
// absorberMemberCount members is large enough to be worth caching.
func (c *potentialCache) shouldStore(absorberMemberCount int) bool {
	return absorberMemberCount > c.threshold
}

// store records the potential for the pair (a, b) under both directions.
func (c *potentialCache) store(a, b int64, pot float64) {
	c.values[pairHash(a, b)] = pot
	c.indexSide(a, b)
	c.indexSide(b, a)
}

func (c *potentialCache) indexSide(id, other int64) {
	t, ok := c.byID[id]
	if !ok {
		t = &llrb.Tree{}
		c.byID[id] = t
	}
	o := otherID(other)
	if t.Get(o) == nil {
		t.Insert(o)
	}
}

// othersOf returns every id currently cached against id, in the tree's
// iteration order.
func othersOf(t *llrb.Tree) []int64 {
	if t == nil {
		return nil
	}
	var others []int64
	t.Do(func(item llrb.Comparable) bool {
		others = append(others, int64(item.(otherID)))
		return false
	})
	return others
}

// removeReciprocal deletes id from other's reverse-index tree, the
// mirror half of an invalidated pair.
func (c *potentialCache) removeReciprocal(other, id int64) {
	t, ok := c.byID[other]
	if !ok {
		return
	}
	t.Delete(otherID(id))
}

// tombstoneID invalidates every cached entry involving id, then clears
// (rather than removes) id's own reverse-index slot. Used for the
// absorbing parent P, whose id the merged region M inherits, so a later
// cache insertion under the same id belongs to M, not the retired P.
func (c *potentialCache) tombstoneID(id int64) {
	for _, other := range othersOf(c.byID[id]) {
		delete(c.values, pairHash(id, other))
		c.removeReciprocal(other, id)
	}
	c.byID[id] = &llrb.Tree{}
}

// removeID invalidates every cached entry involving id and discards
// id's reverse-index slot entirely. Used for the non-absorbing parent
// Q, whose id never reappears.
func (c *potentialCache) removeID(id int64) {
	for _, other := range othersOf(c.byID[id]) {
		delete(c.values, pairHash(id, other))
		c.removeReciprocal(other, id)
	}
	delete(c.byID, id)
}
