package minio

import (
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/nose-embedder/internal/cfg"
	"github.com/DRSN-tech/nose-embedder/internal/domain"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		data, err := json.Marshal(domain.NewVectorRecord("did:pet:1", []float32{0.1, 0.2, 0.3}))
		require.NoError(t, err)

		record, err := decodeRecord("did:pet:1", data)

		require.NoError(t, err)
		assert.Equal(t, "did:pet:1", record.PetDID)
		assert.Len(t, record.FeatureVector, 3)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := decodeRecord("did:pet:1", []byte("{not json"))

		require.Error(t, err)
		assert.Equal(t, e.CodeInternalServerError, e.From(err).Code)
	})

	t.Run("empty featureVector", func(t *testing.T) {
		data := []byte(`{"petDID":"did:pet:1","featureVector":[],"vectorSize":0,"createdAt":"2026-08-30T12:00:00Z","version":"1.0"}`)

		_, err := decodeRecord("did:pet:1", data)

		require.Error(t, err)
		de := e.From(err)
		assert.Equal(t, e.CodeInternalServerError, de.Code)
		assert.Contains(t, de.Message, "empty featureVector")
	})

	t.Run("vectorSize disagrees with featureVector length", func(t *testing.T) {
		data := []byte(`{"petDID":"did:pet:1","featureVector":[0.1,0.2],"vectorSize":512,"createdAt":"2026-08-30T12:00:00Z","version":"1.0"}`)

		_, err := decodeRecord("did:pet:1", data)

		require.Error(t, err)
		de := e.From(err)
		assert.Equal(t, e.CodeInternalServerError, de.Code)
		assert.Contains(t, de.Message, "512 declared")
		assert.Contains(t, de.Message, "2 actual")
	})
}

func TestVectorObjectKey(t *testing.T) {
	repo := NewVectorRepo(nil, &cfg.MinIOCfg{VectorPrefix: "pet/petDID"})

	assert.Equal(t, "pet/petDID/did:pet:1.json", repo.objectKey("did:pet:1"))
}
