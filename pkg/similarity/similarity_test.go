package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdenticalVectors(t *testing.T) {
	a := []float32{0.3, 0.5, 0.1, 0.7}

	// float32 inputs only carry ~7 significant digits
	assert.InDelta(t, 1.0, Cosine(a, a), 1e-6)
	assert.InDelta(t, 0.0, Euclidean(a, a), 1e-6)
	assert.InDelta(t, 1.0, Angular(a, a), 1e-6)
}

func TestOrthogonalUnitVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}

	assert.InDelta(t, 0.0, Cosine(a, b), 1e-9)
	assert.InDelta(t, 0.5, Angular(a, b), 1e-9)
	assert.InDelta(t, math.Sqrt2, Euclidean(a, b), 1e-9)
}

func TestOppositeVectors(t *testing.T) {
	a := []float32{1, 0, 0}
	b := []float32{-1, 0, 0}

	assert.InDelta(t, -1.0, Cosine(a, b), 1e-9)
	assert.InDelta(t, 0.0, Angular(a, b), 1e-9)
}

func TestZeroAndMismatchedVectors(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 1}))
	assert.Equal(t, 0.0, Cosine([]float32{1, 2}, []float32{1, 2, 3}))
	assert.True(t, math.IsInf(Euclidean([]float32{1}, []float32{1, 2}), 1))
}

func TestKnownDistance(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 6, 8}

	// sqrt(9 + 16 + 25) = sqrt(50)
	assert.InDelta(t, math.Sqrt(50), Euclidean(a, b), 1e-6)
}
