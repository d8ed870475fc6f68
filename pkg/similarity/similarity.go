package similarity

import "math"

// Cosine computes the cosine similarity between two vectors.
// Returns 0 when either vector has zero magnitude or the lengths differ.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Euclidean computes the L2 distance between two vectors.
// Identical vectors have distance 0; the value is unbounded above.
func Euclidean(a, b []float32) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Angular maps cosine similarity onto [0, 1]: identical directions give 1,
// opposite directions give 0, orthogonal vectors give 0.5.
func Angular(a, b []float32) float64 {
	cos := Cosine(a, b)

	// Clamp before acos to guard against float drift outside [-1, 1]
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return 1 - math.Acos(cos)/math.Pi
}
