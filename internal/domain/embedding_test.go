package domain

import (
	"math"
	"testing"

	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmbedding(t *testing.T) {
	t.Run("valid vector", func(t *testing.T) {
		emb, err := NewEmbedding([]float32{0.1, 0.2, 0.3})

		require.NoError(t, err)
		assert.Equal(t, 3, emb.Dimension())
	})

	t.Run("empty vector", func(t *testing.T) {
		_, err := NewEmbedding(nil)

		require.Error(t, err)
		assert.Equal(t, e.CodeInternalServerError, e.From(err).Code)
	})

	t.Run("NaN element", func(t *testing.T) {
		_, err := NewEmbedding([]float32{0.1, float32(math.NaN()), 0.3})

		require.Error(t, err)
		de := e.From(err)
		assert.Equal(t, e.CodeInternalServerError, de.Code)
		assert.Contains(t, de.Message, "index 1")
	})

	t.Run("Inf element", func(t *testing.T) {
		_, err := NewEmbedding([]float32{float32(math.Inf(-1))})

		require.Error(t, err)
		assert.Equal(t, e.CodeInternalServerError, e.From(err).Code)
	})
}

func TestNewNoseImage(t *testing.T) {
	t.Run("valid image", func(t *testing.T) {
		img, err := NewNoseImage([]byte{0xFF, 0xD8, 0xFF}, "jpeg")

		require.NoError(t, err)
		assert.Equal(t, 3, img.SizeBytes())
		assert.Equal(t, "jpeg", img.Format)
	})

	t.Run("empty data", func(t *testing.T) {
		_, err := NewNoseImage(nil, "")

		require.Error(t, err)
		de := e.From(err)
		assert.Equal(t, e.CodeInvalidImage, de.Code)
		assert.False(t, de.Retryable)
	})
}
