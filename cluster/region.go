package cluster

// Region is a node in the in-progress merge forest: either a singleton
// wrapping one input Point, or the union of two previously-live
// regions. Exactly one Region owns any given Point at a time.
type Region struct {
	// ID is a stable integer identifier. A newly merged region inherits
	// the ID of the larger-weight side (spec's load-bearing "preserve
	// heavier side's id" rule; downstream tooling groups merges by this
	// id to reconstruct the hierarchy).
	ID int64

	// X, Y are the current centroid (longitude, latitude), the weighted
	// mean of all members.
	X, Y float64

	// N is the current aggregate weight: the sum of member weights.
	N float64

	// OrigLon, OrigLat are the coordinates of the primordial point whose
	// id this region inherits. Used only for emit provenance.
	OrigLon, OrigLat float64

	// Members is the ordered list of original Points that formed this
	// region, retained because potential evaluation sums over member
	// pairs rather than operating on the centroid alone. Order is
	// irrelevant to correctness.
	Members []Point

	// BestPartner is the other live region currently believed to
	// maximize potential against this one, or nil if none has been
	// considered yet. BestPot is the potential for that pairing, 0 if
	// BestPartner is nil.
	BestPartner *Region
	BestPot     float64
}

// newSingletonRegion constructs the Region for one ingested Point.
// origID is assigned from the ingest index.
func newSingletonRegion(origID int64, p Point) *Region {
	return &Region{
		ID:      origID,
		X:       p.Lon,
		Y:       p.Lat,
		N:       p.Weight,
		OrigLon: p.Lon,
		OrigLat: p.Lat,
		Members: []Point{p},
	}
}

// mergeRegions constructs the Region formed by merging heavier and
// lighter. The caller must have already ordered the two sides so that
// heavier.N >= lighter.N (spec's §4.2/§4.6 ordering rule); mergeRegions
// does not itself re-check weight order, since the scheduler's select
// step is the single place responsible for that ordering.
//
// The merged region gets a fresh slice holding both parents' members;
// the parents' own Members stay readable until the caller retires them
// with release.
func mergeRegions(heavier, lighter *Region) *Region {
	n := heavier.N + lighter.N
	members := make([]Point, 0, len(heavier.Members)+len(lighter.Members))
	members = append(members, heavier.Members...)
	members = append(members, lighter.Members...)

	return &Region{
		ID:      heavier.ID,
		X:       (heavier.X*heavier.N + lighter.X*lighter.N) / n,
		Y:       (heavier.Y*heavier.N + lighter.Y*lighter.N) / n,
		N:       n,
		OrigLon: heavier.OrigLon,
		OrigLat: heavier.OrigLat,
		Members: members,
	}
}

// release drops this region's reference to its member list, bounding
// peak memory once a region has been consumed by a merge.
func (r *Region) release() {
	r.Members = nil
	r.BestPartner = nil
}
