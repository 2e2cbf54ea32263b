// Command bio-geocluster reads weighted geographic points from a CSV file
// and streams out the hierarchical agglomerative merge tree produced by
// gravitational-potential clustering.
//
// Example:
//
//    bio-geocluster --in=points.csv --out=merges.tsv.gz
package main

import (
	"flag"
	"time"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/jspenc4/geocluster/cluster"
	"github.com/jspenc4/geocluster/encoding/geopoints"
)

func main() {
	inPath := flag.String("in", "", "Path to a CSV file of longitude,latitude,weight points. A .gz suffix is read transparently.")
	outPath := flag.String("out", "", "Path to write the merge-record TSV. A .gz suffix compresses the output.")
	maxRecords := flag.Int("max-records", 0, "Stop after emitting this many merge records. 0 means run to a single region.")
	cacheThreshold := flag.Int("cache-threshold", cluster.DefaultCacheThreshold, "Cache a merged region's potentials once its member count exceeds this.")
	verify := flag.Bool("verify", false, "Check merge invariants after every step. Slows the run; useful when debugging.")

	cleanup := grail.Init()
	defer cleanup()
	ctx := vcontext.Background()

	if *inPath == "" || *outPath == "" {
		log.Fatalf("--in and --out are required")
	}

	points, err := geopoints.ReadPoints(ctx, *inPath)
	if err != nil {
		log.Panicf("read %s: %v", *inPath, err)
	}

	w, err := geopoints.NewWriter(ctx, *outPath)
	if err != nil {
		log.Panicf("create %s: %v", *outPath, err)
	}

	start := time.Now()
	session := cluster.NewSession(points, cluster.Options{
		MaxRecords:     *maxRecords,
		CacheThreshold: *cacheThreshold,
		Verify:         *verify,
	})

	nMerges := 0
	counter := cluster.RecordSinkFunc(func(rec cluster.MergeRecord) error {
		nMerges++
		return w.Emit(rec)
	})
	if err := session.Run(counter); err != nil {
		log.Panicf("cluster %s: %v", *inPath, err)
	}
	if err := w.Close(ctx); err != nil {
		log.Panicf("close %s: %v", *outPath, err)
	}

	log.Debug.Printf("bio-geocluster: %d points, %d merges, %d live region(s) remaining, %s elapsed",
		len(points), nMerges, session.LiveCount(), time.Since(start))
	log.Printf("All done")
}
