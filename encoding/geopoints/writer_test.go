package geopoints

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jspenc4/geocluster/cluster"
)

func TestWriterRoundTrip(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := filepath.Join(dir, "merges.tsv")
	ctx := context.Background()
	w, err := NewWriter(ctx, path)
	require.NoError(t, err)

	rec := cluster.MergeRecord{
		Seq: 1, IDA: 0, NA: 2, LonA: 0.5, LatA: 0, OrigLonA: 0, OrigLatA: 0,
		IDB: 1, NB: 1, LonB: 1, LatB: 0, OrigLonB: 1, OrigLatB: 0,
	}
	require.NoError(t, w.Emit(rec))
	require.NoError(t, w.Close(ctx))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	tr := tsv.NewReader(f)
	tr.HasHeaderRow = true
	var row mergeRecordRow
	require.NoError(t, tr.Read(&row))
	assert.Equal(t, int64(1), row.Seq)
	assert.Equal(t, int64(0), row.IDA)
	assert.Equal(t, 2.0, row.NA)
	assert.Equal(t, int64(1), row.IDB)
	assert.Equal(t, 1.0, row.NB)

	err = tr.Read(&row)
	assert.Equal(t, io.EOF, err)
}

func TestWriterSuppressesZeroNBRecord(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := filepath.Join(dir, "merges.tsv")
	ctx := context.Background()
	w, err := NewWriter(ctx, path)
	require.NoError(t, err)

	require.NoError(t, w.Emit(cluster.MergeRecord{Seq: 1, IDA: 0, NA: 1, NB: 0}))
	require.Equal(t, int64(0), w.nRecs)
	require.NoError(t, w.Close(ctx))
}

func TestWriterGzipSuffix(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := filepath.Join(dir, "merges.tsv.gz")
	ctx := context.Background()
	w, err := NewWriter(ctx, path)
	require.NoError(t, err)
	require.NotNil(t, w.gz)
	require.NoError(t, w.Emit(cluster.MergeRecord{Seq: 1, IDA: 0, NA: 2, IDB: 1, NB: 1}))
	require.NoError(t, w.Close(ctx))
}
