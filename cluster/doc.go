/*Package cluster implements hierarchical agglomerative clustering of
weighted geographic points, driven by a gravitational-potential
attraction score between regions.

At the conceptual level, the package maintains a set of live Regions,
each a weighted centroid plus the original Points that formed it. On
every iteration it finds the pair of live regions with the highest
mutual potential:

	pot(A, B) = sum over (a in A.members, b in B.members) of
	            (a.weight * b.weight) / dist(a, b)^4

merges them into a single region (the heavier side's id survives), and
emits one merge record. This repeats until a single region remains.

Evaluating every pair on every iteration is O(N^2) per step, which is
intractable for the N ~ 10^5-10^6 inputs this package targets. Two
bookkeeping structures keep the naive cost down: a per-region
best-partner slot (so the global maximum is a linear scan, not an
all-pairs scan) and a sparse potential cache for region pairs large
enough to be worth memoizing (so that repeated potential evaluations
against a big region don't redo the full member-pair sum).

The package is single-threaded: the merge loop has no suspension
points, and the only blocking operations are the bulk read of the
input file and the line-at-a-time write of the merge record stream,
both handled by the caller via encoding/geopoints.
*/
package cluster
