package cluster

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomPoints generates n uniformly random points in a bounded
// continental-scale box, with a fixed seed for reproducibility.
func randomPoints(n int, seed int64) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			Lon:    -120 + r.Float64()*60,
			Lat:    25 + r.Float64()*20,
			Weight: 1 + r.Float64()*99,
		}
	}
	return points
}

// runAll drives a Session to completion and returns every emitted
// record, in sequence order.
func runAll(t *testing.T, points []Point, opts Options) []MergeRecord {
	t.Helper()
	s := NewSession(points, opts)
	var records []MergeRecord
	err := s.Run(RecordSinkFunc(func(rec MergeRecord) error {
		records = append(records, rec)
		return nil
	}))
	require.NoError(t, err)
	return records
}
