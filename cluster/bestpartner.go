package cluster

// initBestPartners seeds every region's best-partner slot by
// evaluating every unordered pair exactly once. This is the one
// deliberately O(N^2) step in the algorithm; every subsequent
// best-partner update is incremental.
func initBestPartners(live []*Region) {
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			a, b := live[i], live[j]
			pot := Potential(a, b)
			if pot > a.BestPot {
				a.BestPartner = b
				a.BestPot = pot
			}
			if pot > b.BestPot {
				b.BestPartner = a
				b.BestPot = pot
			}
		}
	}
}

// summandCached returns pot(r, parent), preferring a cached value.
// This result is never itself cached here: caching is governed by the
// absorbing side's size, and r is always the "other" side of this
// particular evaluation.
func summandCached(r, parent *Region, cache *potentialCache) float64 {
	if v, ok := cache.lookup(r.ID, parent.ID); ok {
		return v
	}
	return Potential(r, parent)
}

// rescanRegion reconstructs r's best-partner slot from scratch against
// every region in all other than r itself. This is the fix for a
// latent bug class: whenever a region's best partner has just been
// retired, the refresh loop must not rely on incidentally
// re-discovering a good partner for it.
func rescanRegion(r *Region, all []*Region) {
	r.BestPartner = nil
	r.BestPot = 0
	for _, other := range all {
		if other == r {
			continue
		}
		pot := Potential(r, other)
		if pot > r.BestPot {
			r.BestPartner = other
			r.BestPot = pot
		}
	}
}

// mergeRefreshEntry is one survivor's precomputed contribution to a
// post-merge best-partner refresh, captured before the cache
// invalidation that the merge also triggers.
type mergeRefreshEntry struct {
	r        *Region
	pot      float64
	wasStale bool
}

// prepareMergeRefresh computes pot(m, r) as pot(r, p) + pot(r, q) for
// every surviving region r, which is exact because potential is
// linear over member pairs and m.Members is exactly p.Members
// concatenated with q.Members. survivors is the live set with p and q
// already removed and m not yet added.
//
// This must run before the caller invalidates the cache entries keyed
// by p.ID and q.ID: those are exactly the entries summandCached can
// still hit here. Invalidating first and preparing the refresh second
// would make every lookup miss, forcing a full recomputation on every
// merge and leaving the cache's stored entries unread.
func prepareMergeRefresh(survivors []*Region, p, q *Region, cache *potentialCache) []mergeRefreshEntry {
	entries := make([]mergeRefreshEntry, 0, len(survivors))
	for _, r := range survivors {
		entries = append(entries, mergeRefreshEntry{
			r:        r,
			pot:      summandCached(r, p, cache) + summandCached(r, q, cache),
			wasStale: r.BestPartner == p || r.BestPartner == q,
		})
	}
	return entries
}

// applyMergeRefresh stores the potentials prepareMergeRefresh computed
// and updates best-partner slots. The caller must invalidate the
// cache's p.ID/q.ID entries between preparing and applying: only then
// is it safe to store new entries under m.ID, which m inherits from
// the absorbing parent. newLive is the live set with m already added,
// used as the rescan universe for any survivor whose best partner was
// just retired.
func applyMergeRefresh(newLive []*Region, m *Region, entries []mergeRefreshEntry, cache *potentialCache) {
	storeLarge := cache.shouldStore(len(m.Members))
	for _, e := range entries {
		r, pot := e.r, e.pot
		if storeLarge {
			cache.store(m.ID, r.ID, pot)
		}
		if pot > m.BestPot {
			m.BestPartner = r
			m.BestPot = pot
		}
		if pot > r.BestPot {
			r.BestPartner = m
			r.BestPot = pot
		}
		if e.wasStale {
			rescanRegion(r, newLive)
		}
	}
}
