package cluster

// DefaultCacheThreshold is the potential-cache size policy default: a
// region pair is worth caching once the absorbing side has more than
// this many members.
const DefaultCacheThreshold = 100

// Options configures a clustering Session. The zero value is valid:
// MaxRecords of 0 means unlimited, CacheThreshold of 0 selects
// DefaultCacheThreshold.
type Options struct {
	// MaxRecords caps the number of merge records emitted. 0 (or
	// negative) means unlimited — the loop runs to completion.
	MaxRecords int

	// CacheThreshold is the absorbing-side member count a pair must
	// exceed to be worth caching.
	CacheThreshold int

	// Verify enables O(1)-per-merge structural invariant checks (weight
	// conservation, non-negative potential) that report as Invariant or
	// Numeric errors. Off by default to keep the merge loop's cost
	// unconditional on it; exercised unconditionally by tests.
	Verify bool
}

// MergeRecord is one emitted merge event, side A always the heavier
// region at the moment of merge.
type MergeRecord struct {
	Seq int

	IDA                int64
	NA                 float64
	LatA, LonA         float64
	OrigLatA, OrigLonA float64

	IDB                int64
	NB                 float64
	LatB, LonB         float64
	OrigLatB, OrigLonB float64
}

// RecordSink receives merge records as the scheduler produces them.
type RecordSink interface {
	Emit(MergeRecord) error
}

// RecordSinkFunc adapts a plain function to a RecordSink.
type RecordSinkFunc func(MergeRecord) error

// Emit implements RecordSink.
func (f RecordSinkFunc) Emit(rec MergeRecord) error { return f(rec) }

// Session drives one complete clustering run over a fixed initial set
// of regions. A Session is created, driven to completion by Run, and
// discarded; there is no persistent or process-wide state.
type Session struct {
	opts  Options
	live  []*Region
	cache *potentialCache
	seq   int
}

// NewSession builds the initial singleton regions from points (one per
// point, in input order) and prepares an empty cache. Points are
// expected to already be weight-filtered by the ingest adapter;
// NewSession does not re-filter.
func NewSession(points []Point, opts Options) *Session {
	if opts.CacheThreshold <= 0 {
		opts.CacheThreshold = DefaultCacheThreshold
	}
	live := make([]*Region, 0, len(points))
	for i, p := range points {
		live = append(live, newSingletonRegion(int64(i), p))
	}
	return &Session{
		opts:  opts,
		live:  live,
		cache: newPotentialCache(opts.CacheThreshold),
	}
}

// LiveCount returns the number of regions still live.
func (s *Session) LiveCount() int { return len(s.live) }

// Run executes the merge loop to completion (or until MaxRecords is
// reached), calling sink.Emit once per merge in sequence order. The
// loop terminates after exactly N-1 iterations for N initial regions,
// each reducing the live-set size by exactly one.
func (s *Session) Run(sink RecordSink) error {
	n := len(s.live)
	if n < 2 {
		return nil
	}
	initBestPartners(s.live)

	for len(s.live) > 1 {
		if s.opts.MaxRecords > 0 && s.seq >= s.opts.MaxRecords {
			return nil
		}

		heavy, light := s.selectBestPair()
		if heavy == nil {
			return errInvariant("no best-partner pair found with live set size", len(s.live))
		}
		if heavy.N < light.N {
			heavy, light = light, heavy
		}

		s.seq++
		rec := MergeRecord{
			Seq:      s.seq,
			IDA:      heavy.ID,
			NA:       heavy.N,
			LatA:     heavy.Y,
			LonA:     heavy.X,
			OrigLatA: heavy.OrigLat,
			OrigLonA: heavy.OrigLon,
			IDB:      light.ID,
			NB:       light.N,
			LatB:     light.Y,
			LonB:     light.X,
			OrigLatB: light.OrigLat,
			OrigLonB: light.OrigLon,
		}

		if s.opts.Verify {
			if err := checkPreMergeInvariants(heavy, light); err != nil {
				return err
			}
		}

		// Rows where nB == 0 are suppressed as a defensive guard;
		// ingest filtering already makes this unreachable in practice.
		if rec.NB != 0 {
			if err := sink.Emit(rec); err != nil {
				return err
			}
		}

		merged := mergeRegions(heavy, light)

		s.removeLive(heavy)
		s.removeLive(light)

		// Read cached pot(r, heavy)/pot(r, light) while those entries
		// are still live, before the cache is invalidated below.
		refresh := prepareMergeRefresh(s.live, heavy, light, s.cache)

		// Invalidate the cache before retiring members: P (heavy) is
		// tombstoned because M inherits its id; Q (light) is removed
		// outright because its id never reappears.
		s.cache.tombstoneID(heavy.ID)
		s.cache.removeID(light.ID)

		heavy.release()
		light.release()

		s.addLive(merged)
		applyMergeRefresh(s.live, merged, refresh, s.cache)

		if s.opts.Verify {
			if err := checkPostMergeInvariants(merged, heavy, light); err != nil {
				return err
			}
		}
	}
	return nil
}

// selectBestPair scans the live set in insertion order for the region
// with maximum best-potential, breaking ties by keeping the
// first-encountered maximum.
func (s *Session) selectBestPair() (*Region, *Region) {
	var best *Region
	for _, r := range s.live {
		if r.BestPartner == nil {
			continue
		}
		if best == nil || r.BestPot > best.BestPot {
			best = r
		}
	}
	if best == nil {
		return nil, nil
	}
	return best, best.BestPartner
}

// removeLive deletes r from the live set, preserving the relative
// order of the remaining regions (the tie-break model's insertion
// order).
func (s *Session) removeLive(r *Region) {
	for i, x := range s.live {
		if x == r {
			s.live = append(s.live[:i], s.live[i+1:]...)
			return
		}
	}
}

func (s *Session) addLive(r *Region) {
	s.live = append(s.live, r)
}
