package geopoints

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/klauspost/compress/gzip"

	"github.com/jspenc4/geocluster/cluster"
)

// ReadPoints reads weighted points from the CSV file at path: a header row
// (ignored) followed by "longitude,latitude,weight" rows. A ".gz" suffix
// selects transparent gzip decompression. Rows with non-positive weight are
// dropped; dropping a row is logged at Debug level but does not fail the
// read, since a handful of zero-weight sentinel rows is a common upstream
// export artifact.
func ReadPoints(ctx context.Context, path string) (points []cluster.Point, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, cluster.ErrInputFormat(err, "open", path)
	}
	defer file.CloseAndReport(ctx, in, &err)

	r := in.Reader(ctx)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, cluster.ErrInputFormat(err, "gzip open", path)
		}
		defer gz.Close()
		r = gz
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, cluster.ErrInputFormat("empty input", path)
		}
		return nil, cluster.ErrInputFormat(err, "read header", path)
	}

	nLine := 1
	nDropped := 0
	for {
		row, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, cluster.ErrInputFormat(err, path, "line", nLine+1)
		}
		nLine++

		lon, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, cluster.ErrInputFormat(err, path, "line", nLine, "longitude")
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, cluster.ErrInputFormat(err, path, "line", nLine, "latitude")
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, cluster.ErrInputFormat(err, path, "line", nLine, "weight")
		}

		if weight <= 0 {
			nDropped++
			log.Debug.Printf("geopoints: dropping %s:%d, non-positive weight %v", path, nLine, weight)
			continue
		}
		points = append(points, cluster.Point{Lon: lon, Lat: lat, Weight: weight})
	}
	if len(points) == 0 {
		return nil, cluster.ErrInputFormat("no usable rows", path)
	}
	log.Debug.Printf("geopoints: read %d points from %s (%d dropped)", len(points), path, nDropped)
	return points, nil
}
