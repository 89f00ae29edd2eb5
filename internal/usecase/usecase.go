package usecase

import (
	"context"

	"github.com/DRSN-tech/nose-embedder/internal/domain"
)

type EmbedderUC interface {
	ExtractEmbedding(ctx context.Context, req *ExtractReq) (*domain.Embedding, error)
	CompareWithStoredImage(ctx context.Context, req *CompareReq) (*SimilarityRes, error)
	HealthCheck(ctx context.Context) (*HealthRes, error)
}
