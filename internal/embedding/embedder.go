// Package embedding provides the text-to-vector provider abstraction, a
// Gemini-backed implementation, a deterministic fallback for provider
// outages, and a persisted vector cache.
package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
)

// DefaultDimensions matches the default Gemini embedding model.
const DefaultDimensions = 768

// Embedder generates embedding vectors from text. Implementations must be
// safe for concurrent use.
type Embedder interface {
	// Embed generates a vector representation of the given text.
	Embed(ctx context.Context, text string) ([]float64, error)
	// Dimensions returns the fixed vector length this embedder produces.
	Dimensions() int
	// Available reports whether the provider can currently serve calls.
	Available() bool
}

// Cosine returns the cosine of the angle between two vectors, or 0 when
// either is empty, zero, or the lengths differ.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Similarity remaps cosine similarity from [-1,1] to [0,1], clamped.
func Similarity(a, b []float64) float64 {
	s := (Cosine(a, b) + 1) / 2
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// HashVector derives a deterministic unit vector from the text alone. It
// substitutes for provider output when the provider is unavailable, so
// downstream math is never blocked by an outage. The same text always
// yields the same vector.
func HashVector(text string, dims int) []float64 {
	if dims <= 0 {
		dims = DefaultDimensions
	}
	vec := make([]float64, dims)
	seed := sha256.Sum256([]byte(text))
	buf := seed[:]
	for (len(buf) / 4) < dims {
		next := sha256.Sum256(buf[len(buf)-sha256.Size:])
		buf = append(buf, next[:]...)
	}
	var norm float64
	for i := 0; i < dims; i++ {
		u := binary.BigEndian.Uint32(buf[i*4 : i*4+4])
		vec[i] = float64(int64(u)-math.MaxInt32) / math.MaxInt32 // [-1, 1]
		norm += vec[i] * vec[i]
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		vec[0] = 1
		return vec
	}
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
