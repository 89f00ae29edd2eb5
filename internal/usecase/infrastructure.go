package usecase

import (
	"context"

	"github.com/DRSN-tech/nose-embedder/internal/domain"
)

type InferenceEngine interface {
	Infer(ctx context.Context, input *Tensor) ([]float32, error)
	IsReady() bool
	Describe() ModelInfo
}

type Preprocessor interface {
	Prepare(ctx context.Context, image *domain.NoseImage) (*Tensor, error)
}
