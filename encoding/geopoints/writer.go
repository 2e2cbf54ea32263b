package geopoints

import (
	"context"
	"encoding/binary"
	"hash"
	"strings"

	"blainsmith.com/go/seahash"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"

	"github.com/jspenc4/geocluster/cluster"
)

// mergeRecordRow is the on-disk shape of one output record. Field order here
// fixes the on-disk column order.
type mergeRecordRow struct {
	Seq       int64   `tsv:"seq"`
	IDA       int64   `tsv:"id_a"`
	NA        float64 `tsv:"n_a"`
	LatA      float64 `tsv:"lat_a"`
	LonA      float64 `tsv:"lon_a"`
	OrigLatA  float64 `tsv:"orig_lat_a"`
	OrigLonA  float64 `tsv:"orig_lon_a"`
	IDB       int64   `tsv:"id_b"`
	NB        float64 `tsv:"n_b"`
	LatB      float64 `tsv:"lat_b"`
	LonB      float64 `tsv:"lon_b"`
	OrigLatB  float64 `tsv:"orig_lat_b"`
	OrigLonB  float64 `tsv:"orig_lon_b"`
}

// Writer emits a merge-record stream as TSV using a struct-tag row writer.
type Writer struct {
	dst   file.File
	gz    *gzip.Writer
	rw    *tsv.RowWriter
	sum   hash.Hash64
	nRecs int64
}

// NewWriter opens path for writing. A ".gz" suffix wraps the output in
// transparent gzip compression.
func NewWriter(ctx context.Context, path string) (w *Writer, err error) {
	dst, err := file.Create(ctx, path)
	if err != nil {
		return nil, errors.E(err, "create", path)
	}
	w = &Writer{dst: dst, sum: seahash.New()}

	out := dst.Writer(ctx)
	if strings.HasSuffix(path, ".gz") {
		w.gz = gzip.NewWriter(out)
		out = w.gz
	}
	w.rw = tsv.NewRowWriter(out)
	return w, nil
}

// Emit implements cluster.RecordSink. A record whose NB is zero is
// suppressed as a defensive guard; ingest filtering already keeps
// zero-weight points out.
func (w *Writer) Emit(rec cluster.MergeRecord) error {
	if rec.NB == 0 {
		return nil
	}
	row := mergeRecordRow{
		Seq:      int64(rec.Seq),
		IDA:      rec.IDA,
		NA:       rec.NA,
		LatA:     rec.LatA,
		LonA:     rec.LonA,
		OrigLatA: rec.OrigLatA,
		OrigLonA: rec.OrigLonA,
		IDB:      rec.IDB,
		NB:       rec.NB,
		LatB:     rec.LatB,
		LonB:     rec.LonB,
		OrigLatB: rec.OrigLatB,
		OrigLonB: rec.OrigLonB,
	}
	if err := w.rw.Write(&row); err != nil {
		return errors.E(err, "write record", rec.Seq)
	}
	w.nRecs++

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(rec.IDA)^uint64(rec.IDB))
	w.sum.Write(buf[:])
	return nil
}

// Close flushes buffered output, closes any gzip wrapper and the underlying
// file, and logs a run summary with the running checksum.
func (w *Writer) Close(ctx context.Context) (err error) {
	if err = w.rw.Flush(); err != nil {
		return errors.E(err, "flush")
	}
	if w.gz != nil {
		if err = w.gz.Close(); err != nil {
			return errors.E(err, "gzip close")
		}
	}
	if err = w.dst.Close(ctx); err != nil {
		return errors.E(err, "close")
	}
	log.Debug.Printf("geopoints: wrote %d merge records, checksum %x", w.nRecs, w.sum.Sum64())
	return nil
}
