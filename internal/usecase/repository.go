package usecase

import (
	"context"

	"github.com/DRSN-tech/nose-embedder/internal/domain"
)

type ImageRepository interface {
	GetByKey(ctx context.Context, key string) ([]byte, error)
}

type VectorRepository interface {
	GetByDID(ctx context.Context, petDID string) (*domain.VectorRecord, error)
}
