package grpc

import (
	"context"

	"github.com/DRSN-tech/nose-embedder/internal/proto"
	"github.com/DRSN-tech/nose-embedder/internal/usecase"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/DRSN-tech/nose-embedder/pkg/logger"
	"github.com/google/uuid"
)

// EmbedderService — gRPC-обработчик сервиса векторизации. Доменные сбои
// возвращаются структурированным ответом с success=false, транспортный статус
// используется только для отменённых и просроченных запросов.
type EmbedderService struct {
	proto.UnimplementedNoseEmbedderServiceServer
	embUC  usecase.EmbedderUC
	logger logger.Logger
}

func NewEmbedderService(embUC usecase.EmbedderUC, logger logger.Logger) *EmbedderService {
	return &EmbedderService{embUC: embUC, logger: logger}
}

func (g *EmbedderService) ExtractNoseVector(ctx context.Context, req *proto.NoseImageRequest) (*proto.NoseVectorResponse, error) {
	const op = "grpc.ExtractNoseVector"
	requestID := uuid.NewString()

	embedding, err := g.embUC.ExtractEmbedding(ctx, &usecase.ExtractReq{
		ImageData:   req.GetImageData(),
		ImageFormat: req.GetImageFormat(),
	})
	if err != nil {
		if stErr := canceledStatus(err); stErr != nil {
			return nil, stErr
		}

		de := e.From(err)
		g.logger.Errorf(e.Wrap(op, err), "request failed, request_id: %s, code: %d", requestID, de.Code)

		return &proto.NoseVectorResponse{
			Success:      false,
			ErrorMessage: de.Message,
			ErrorCode:    toProtoCode(de.Code),
			Retryable:    de.Retryable,
		}, nil
	}

	g.logger.Infof("vector extracted, request_id: %s, dimension: %d", requestID, embedding.Dimension())

	return &proto.NoseVectorResponse{
		Vector:     embedding.Vector,
		VectorSize: int32(embedding.Dimension()),
		Success:    true,
	}, nil
}

func (g *EmbedderService) CompareWithStoredImage(ctx context.Context, req *proto.CompareWithStoredImageRequest) (*proto.CompareVectorsResponse, error) {
	const op = "grpc.CompareWithStoredImage"
	requestID := uuid.NewString()

	res, err := g.embUC.CompareWithStoredImage(ctx, &usecase.CompareReq{
		ImageKey: req.GetImageKey(),
		PetDID:   req.GetPetDid(),
	})
	if err != nil {
		if stErr := canceledStatus(err); stErr != nil {
			return nil, stErr
		}

		de := e.From(err)
		g.logger.Errorf(e.Wrap(op, err), "request failed, request_id: %s, code: %d", requestID, de.Code)

		return &proto.CompareVectorsResponse{
			Success:      false,
			ErrorMessage: de.Message,
			ErrorCode:    toProtoCode(de.Code),
			Retryable:    de.Retryable,
		}, nil
	}

	g.logger.Infof("comparison done, request_id: %s, similarity: %.4f", requestID, res.Similarity)

	return &proto.CompareVectorsResponse{
		Similarity:        float32(res.Similarity),
		CosineSimilarity:  float32(res.CosineSimilarity),
		EuclideanDistance: float32(res.EuclideanDistance),
		VectorSize:        int32(res.VectorSize),
		Success:           true,
	}, nil
}

func (g *EmbedderService) HealthCheck(ctx context.Context, _ *proto.HealthCheckRequest) (*proto.HealthCheckResponse, error) {
	res, err := g.embUC.HealthCheck(ctx)
	if err != nil {
		if stErr := canceledStatus(err); stErr != nil {
			return nil, stErr
		}

		// Health-check не падает: недоступность отражается статусом.
		return &proto.HealthCheckResponse{
			Status: proto.HealthCheckResponse_NOT_SERVING,
		}, nil
	}

	return &proto.HealthCheckResponse{
		Status:      toProtoStatus(res.Status),
		ModelLoaded: res.ModelLoaded,
		ModelInfo:   formatModelInfo(res.Model),
		Timestamp:   res.Timestamp,
	}, nil
}
