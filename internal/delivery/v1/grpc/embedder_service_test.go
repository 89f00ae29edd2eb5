package grpc

import (
	"context"
	"testing"

	"github.com/DRSN-tech/nose-embedder/internal/domain"
	"github.com/DRSN-tech/nose-embedder/internal/proto"
	"github.com/DRSN-tech/nose-embedder/internal/usecase"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubEmbedderUC struct {
	embedding  *domain.Embedding
	similarity *usecase.SimilarityRes
	health     *usecase.HealthRes
	err        error
}

func (s *stubEmbedderUC) ExtractEmbedding(_ context.Context, _ *usecase.ExtractReq) (*domain.Embedding, error) {
	return s.embedding, s.err
}

func (s *stubEmbedderUC) CompareWithStoredImage(_ context.Context, _ *usecase.CompareReq) (*usecase.SimilarityRes, error) {
	return s.similarity, s.err
}

func (s *stubEmbedderUC) HealthCheck(_ context.Context) (*usecase.HealthRes, error) {
	return s.health, s.err
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func TestExtractNoseVector(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		emb, err := domain.NewEmbedding([]float32{0.1, 0.2, 0.3})
		require.NoError(t, err)

		svc := NewEmbedderService(&stubEmbedderUC{embedding: emb}, nopLogger{})

		res, err := svc.ExtractNoseVector(ctx, &proto.NoseImageRequest{ImageData: []byte{1, 2, 3}})

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, []float32{0.1, 0.2, 0.3}, res.Vector)
		assert.Equal(t, int32(3), res.VectorSize)
		assert.Equal(t, proto.ErrorCode_ERROR_CODE_UNSPECIFIED, res.ErrorCode)
	})

	t.Run("domain failure becomes structured response", func(t *testing.T) {
		svc := NewEmbedderService(&stubEmbedderUC{
			err: e.Wrap("op", e.InvalidImage("failed to decode image", nil)),
		}, nopLogger{})

		res, err := svc.ExtractNoseVector(ctx, &proto.NoseImageRequest{ImageData: []byte("junk")})

		// Доменный сбой — не транспортная ошибка.
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, proto.ErrorCode_INVALID_IMAGE, res.ErrorCode)
		assert.Equal(t, "failed to decode image", res.ErrorMessage)
		assert.False(t, res.Retryable)
	})

	t.Run("retryable failure is flagged", func(t *testing.T) {
		svc := NewEmbedderService(&stubEmbedderUC{
			err: e.ModelNotLoaded("model is not loaded", nil),
		}, nopLogger{})

		res, err := svc.ExtractNoseVector(ctx, &proto.NoseImageRequest{ImageData: []byte{1}})

		require.NoError(t, err)
		assert.Equal(t, proto.ErrorCode_MODEL_NOT_LOADED, res.ErrorCode)
		assert.True(t, res.Retryable)
	})

	t.Run("canceled request becomes transport error", func(t *testing.T) {
		svc := NewEmbedderService(&stubEmbedderUC{
			err: e.Wrap("op", context.Canceled),
		}, nopLogger{})

		_, err := svc.ExtractNoseVector(ctx, &proto.NoseImageRequest{ImageData: []byte{1}})

		require.Error(t, err)
		assert.Equal(t, codes.Canceled, status.Code(err))
	})

	t.Run("deadline becomes transport error", func(t *testing.T) {
		svc := NewEmbedderService(&stubEmbedderUC{
			err: e.Wrap("op", context.DeadlineExceeded),
		}, nopLogger{})

		_, err := svc.ExtractNoseVector(ctx, &proto.NoseImageRequest{ImageData: []byte{1}})

		require.Error(t, err)
		assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
	})
}

func TestCompareWithStoredImage(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := NewEmbedderService(&stubEmbedderUC{
			similarity: usecase.NewSimilarityRes(0.93, 0.93, 1.2, 512),
		}, nopLogger{})

		res, err := svc.CompareWithStoredImage(ctx, &proto.CompareWithStoredImageRequest{
			ImageKey: "pet/img.jpg",
			PetDid:   "did:pet:1",
		})

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.InDelta(t, 0.93, res.Similarity, 1e-6)
		assert.InDelta(t, 1.2, res.EuclideanDistance, 1e-6)
		assert.Equal(t, int32(512), res.VectorSize)
	})

	t.Run("vector not found", func(t *testing.T) {
		svc := NewEmbedderService(&stubEmbedderUC{
			err: e.VectorNotFound("stored vector not found for pet: did:pet:1"),
		}, nopLogger{})

		res, err := svc.CompareWithStoredImage(ctx, &proto.CompareWithStoredImageRequest{
			ImageKey: "pet/img.jpg",
			PetDid:   "did:pet:1",
		})

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, proto.ErrorCode_VECTOR_NOT_FOUND, res.ErrorCode)
		assert.False(t, res.Retryable)
	})

	t.Run("unknown error maps to internal", func(t *testing.T) {
		svc := NewEmbedderService(&stubEmbedderUC{
			err: assert.AnError,
		}, nopLogger{})

		res, err := svc.CompareWithStoredImage(ctx, &proto.CompareWithStoredImageRequest{
			ImageKey: "pet/img.jpg",
			PetDid:   "did:pet:1",
		})

		require.NoError(t, err)
		assert.Equal(t, proto.ErrorCode_INTERNAL_SERVER_ERROR, res.ErrorCode)
		assert.True(t, res.Retryable)
	})
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("serving", func(t *testing.T) {
		svc := NewEmbedderService(&stubEmbedderUC{
			health: &usecase.HealthRes{
				Status:      usecase.StatusServing,
				ModelLoaded: true,
				Model:       usecase.ModelInfo{Path: "/models/test.onnx", InputName: "input", OutputName: "output"},
				Timestamp:   "2026-08-30T12:00:00Z",
			},
		}, nopLogger{})

		res, err := svc.HealthCheck(ctx, &proto.HealthCheckRequest{})

		require.NoError(t, err)
		assert.Equal(t, proto.HealthCheckResponse_SERVING, res.Status)
		assert.True(t, res.ModelLoaded)
		assert.Contains(t, res.ModelInfo, "/models/test.onnx")
		assert.Equal(t, "2026-08-30T12:00:00Z", res.Timestamp)
	})

	t.Run("not serving before model load", func(t *testing.T) {
		svc := NewEmbedderService(&stubEmbedderUC{
			health: &usecase.HealthRes{
				Status:      usecase.StatusNotServing,
				ModelLoaded: false,
			},
		}, nopLogger{})

		res, err := svc.HealthCheck(ctx, &proto.HealthCheckRequest{})

		require.NoError(t, err)
		assert.Equal(t, proto.HealthCheckResponse_NOT_SERVING, res.Status)
		assert.False(t, res.ModelLoaded)
		assert.Empty(t, res.ModelInfo)
	})
}

func TestToProtoCode(t *testing.T) {
	assert.Equal(t, proto.ErrorCode_IMAGE_TOO_LARGE, toProtoCode(e.CodeImageTooLarge))
	assert.Equal(t, proto.ErrorCode_SERVICE_UNAVAILABLE, toProtoCode(e.CodeServiceUnavailable))
	assert.Equal(t, proto.ErrorCode_INTERNAL_SERVER_ERROR, toProtoCode(e.Code(9999)))
}
