package e

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryability(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name      string
		err       *DomainError
		code      Code
		retryable bool
	}{
		{"invalid image", InvalidImage("m", cause), CodeInvalidImage, false},
		{"image too large", ImageTooLarge("m"), CodeImageTooLarge, false},
		{"invalid image format", InvalidImageFormat("m"), CodeInvalidImageFormat, false},
		{"vector not found", VectorNotFound("m"), CodeVectorNotFound, false},
		{"vector dimension mismatch", VectorDimensionMismatch("m"), CodeVectorDimensionMismatch, false},
		{"invalid request", InvalidRequest("m"), CodeInvalidRequest, false},
		{"model not loaded", ModelNotLoaded("m", cause), CodeModelNotLoaded, true},
		{"inference error", InferenceError("m", cause), CodeInferenceError, true},
		{"storage connection error", StorageConnectionError("m", cause), CodeStorageConnectionError, true},
		{"internal server error", InternalServerError("m", cause), CodeInternalServerError, true},
		{"service unavailable", ServiceUnavailable("m"), CodeServiceUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
		})
	}
}

func TestFrom(t *testing.T) {
	t.Run("domain error survives wrapping", func(t *testing.T) {
		original := VectorNotFound("no vector for pet")
		wrapped := Wrap("op1", Wrap("op2", original))

		got := From(wrapped)

		assert.Equal(t, CodeVectorNotFound, got.Code)
		assert.Equal(t, "no vector for pet", got.Message)
		assert.False(t, got.Retryable)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		got := From(fmt.Errorf("disk on fire"))

		assert.Equal(t, CodeInternalServerError, got.Code)
		assert.True(t, got.Retryable)
		assert.Contains(t, got.Message, "disk on fire")
	})
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := InferenceError("run failed", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "5002")
	assert.Contains(t, err.Error(), "run failed")
}
