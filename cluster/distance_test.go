package cluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredDistKnownValue(t *testing.T) {
	// (0,0) to (1,0) is one degree of longitude at the equator,
	// where cos(0) == 1.
	d2 := SquaredDist(0, 0, 1, 0)
	assert.InDelta(t, 69.0*69.0, d2, 1.0)
}

func TestSquaredDistSymmetry(t *testing.T) {
	a := SquaredDist(12.5, 34.0, -98.2, 41.7)
	b := SquaredDist(-98.2, 41.7, 12.5, 34.0)
	assert.Equal(t, a, b)
}

func TestSquaredDistMeridianWrap(t *testing.T) {
	// -179 to 179 is 2 degrees of longitude across the date line, not
	// 358 degrees the naive difference would suggest.
	wrapped := SquaredDist(-179, 0, 179, 0)
	unwrapped := SquaredDist(0, 0, 2, 0)
	assert.InDelta(t, unwrapped, wrapped, 1e-6)

	// What it would be without wrap handling: 358 degrees at cos(0) == 1.
	naiveMiles := (179 - (-179)) * milesPerDegreeLon
	naive := naiveMiles * naiveMiles
	assert.Greater(t, naive, wrapped)
}

func TestSquaredDistPolar(t *testing.T) {
	d2 := SquaredDist(0, 89, 1, 89)
	assert.False(t, math.IsNaN(d2))
	assert.Greater(t, d2, 0.0)

	d2b := SquaredDist(0, -89, 1, -89)
	assert.False(t, math.IsNaN(d2b))
	assert.Greater(t, d2b, 0.0)
}

func TestClampLatIndexBounds(t *testing.T) {
	assert.Equal(t, 0, clampLatIndex(-5))
	assert.Equal(t, 89, clampLatIndex(120))
	assert.Equal(t, 45, clampLatIndex(45.3))
}

func TestQuarticDistDuplicateIsZero(t *testing.T) {
	assert.Equal(t, 0.0, quarticDist(10, 20, 10, 20))
}
