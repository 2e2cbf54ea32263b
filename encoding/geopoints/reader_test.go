package geopoints

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestReadPointsBasic(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := writeTestFile(t, dir, "points.csv", "longitude,latitude,weight\n0,0,1\n1,1,2.5\n")
	points, err := ReadPoints(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 2.5, points[1].Weight)
}

func TestReadPointsTrimsWhitespace(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := writeTestFile(t, dir, "points.csv", "longitude,latitude,weight\n 1.5 , 2.5 , 3.5 \n")
	points, err := ReadPoints(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 1.5, points[0].Lon)
	assert.Equal(t, 2.5, points[0].Lat)
	assert.Equal(t, 3.5, points[0].Weight)
}

func TestReadPointsDropsNonPositiveWeight(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := writeTestFile(t, dir, "points.csv", "longitude,latitude,weight\n0,0,1\n1,1,0\n2,2,-5\n")
	points, err := ReadPoints(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 1.0, points[0].Weight)
}

func TestReadPointsAllDroppedIsError(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := writeTestFile(t, dir, "points.csv", "longitude,latitude,weight\n0,0,0\n")
	_, err := ReadPoints(context.Background(), path)
	assert.Error(t, err)
}

func TestReadPointsMalformedFloat(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	path := writeTestFile(t, dir, "points.csv", "longitude,latitude,weight\nnotanumber,0,1\n")
	_, err := ReadPoints(context.Background(), path)
	assert.Error(t, err)
}

func TestReadPointsMissingFile(t *testing.T) {
	_, err := ReadPoints(context.Background(), "/nonexistent/path/points.csv")
	assert.Error(t, err)
}
