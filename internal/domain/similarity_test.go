package domain

import (
	"testing"

	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors give 1.0", func(t *testing.T) {
		v := []float32{0.1, -0.5, 2.0, 3.5}

		got, err := CosineSimilarity(v, v)

		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := []float32{1, 2, 3}
		b := []float32{-4, 5, 6}

		ab, err := CosineSimilarity(a, b)
		require.NoError(t, err)

		ba, err := CosineSimilarity(b, a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-12)
	})

	t.Run("opposite vectors give -1.0", func(t *testing.T) {
		a := []float32{1, 2, 3}
		b := []float32{-1, -2, -3}

		got, err := CosineSimilarity(a, b)

		require.NoError(t, err)
		assert.InDelta(t, -1.0, got, 1e-9)
	})

	t.Run("zero magnitude gives 0.0 without error", func(t *testing.T) {
		a := []float32{0, 0, 0}
		b := []float32{1, 2, 3}

		got, err := CosineSimilarity(a, b)

		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		a := make([]float32, 128)
		b := make([]float32, 64)

		_, err := CosineSimilarity(a, b)

		require.Error(t, err)
		de := e.From(err)
		assert.Equal(t, e.CodeVectorDimensionMismatch, de.Code)
		assert.Contains(t, de.Message, "128")
		assert.Contains(t, de.Message, "64")
	})

	t.Run("empty vectors", func(t *testing.T) {
		_, err := CosineSimilarity([]float32{}, []float32{})

		require.Error(t, err)
		assert.Equal(t, e.CodeInvalidRequest, e.From(err).Code)
	})
}

func TestEuclideanDistance(t *testing.T) {
	t.Run("identical vectors give 0.0", func(t *testing.T) {
		v := []float32{1.5, -2.5, 3.5}

		got, err := EuclideanDistance(v, v)

		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("3-4-5 triangle", func(t *testing.T) {
		a := []float32{0, 0}
		b := []float32{3, 4}

		got, err := EuclideanDistance(a, b)

		require.NoError(t, err)
		assert.InDelta(t, 5.0, got, 1e-9)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := EuclideanDistance([]float32{1}, []float32{1, 2})

		require.Error(t, err)
		assert.Equal(t, e.CodeVectorDimensionMismatch, e.From(err).Code)
	})
}

func TestNormalizedSimilarity(t *testing.T) {
	t.Run("non-negative cosine passes through", func(t *testing.T) {
		// cos(a,b) = 0.5 для векторов под углом 60 градусов
		a := []float32{1, 0}
		b := []float32{0.5, 0.8660254}

		similarity, cosine, _, err := NormalizedSimilarity(a, b)

		require.NoError(t, err)
		assert.InDelta(t, 0.5, cosine, 1e-6)
		assert.InDelta(t, cosine, similarity, 1e-12)
	})

	t.Run("negative cosine is remapped", func(t *testing.T) {
		// cos(a,b) = -0.5 -> (cos+1)/2 = 0.25
		a := []float32{1, 0}
		b := []float32{-0.5, 0.8660254}

		similarity, cosine, _, err := NormalizedSimilarity(a, b)

		require.NoError(t, err)
		assert.InDelta(t, -0.5, cosine, 1e-6)
		assert.InDelta(t, 0.25, similarity, 1e-6)
	})

	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.25, -0.5, 0.75, 1.0}

		similarity, cosine, euclidean, err := NormalizedSimilarity(v, v)

		require.NoError(t, err)
		assert.InDelta(t, 1.0, similarity, 1e-9)
		assert.InDelta(t, 1.0, cosine, 1e-9)
		assert.Equal(t, 0.0, euclidean)
	})

	t.Run("result is within [0,1]", func(t *testing.T) {
		a := []float32{1, 2, -3}
		b := []float32{-2, 1, 4}

		similarity, _, _, err := NormalizedSimilarity(a, b)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, similarity, 0.0)
		assert.LessOrEqual(t, similarity, 1.0)
	})

	t.Run("dimension mismatch propagates", func(t *testing.T) {
		_, _, _, err := NormalizedSimilarity([]float32{1, 2}, []float32{1})

		require.Error(t, err)
		assert.Equal(t, e.CodeVectorDimensionMismatch, e.From(err).Code)
	})
}
