package cluster

import "math"

// Potential computes the gravitational-style attraction score between
// two regions by summing over all pairs of their member points:
//
//	pot(A, B) = sum_{a in A.Members, b in B.Members} (a.Weight * b.Weight) / dist(a, b)^4
//
// Potential is symmetric (Potential(a, b) == Potential(b, a)) and
// undefined when a == b; callers must never evaluate the potential of
// a region against itself. A member pair at identical coordinates
// contributes +Inf, which is the correct signal that the two regions
// must merge next, and must propagate rather than be guarded against.
func Potential(a, b *Region) float64 {
	var total float64
	for _, pa := range a.Members {
		for _, pb := range b.Members {
			d4 := quarticDist(pa.Lon, pa.Lat, pb.Lon, pb.Lat)
			if d4 == 0 {
				total += math.Inf(1)
				continue
			}
			total += (pa.Weight * pb.Weight) / d4
		}
	}
	return total
}

// ClosestPair returns the pair of points (one from a, one from b) with
// the minimum squared distance between them. It is the interface an
// auxiliary edge-graph renderer would use to find a physical
// closest-point edge between two regions; it is not used by the merge
// scheduler itself, which selects merges by potential, not proximity.
func ClosestPair(a, b []Point) (Point, Point) {
	if len(a) == 0 || len(b) == 0 {
		panic("cluster: ClosestPair requires non-empty point sets")
	}
	best := math.Inf(1)
	var bestA, bestB Point
	for _, pa := range a {
		for _, pb := range b {
			d2 := SquaredDist(pa.Lon, pa.Lat, pb.Lon, pb.Lat)
			if d2 < best {
				best = d2
				bestA, bestB = pa, pb
			}
		}
	}
	return bestA, bestB
}
