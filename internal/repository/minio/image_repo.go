package minio

import (
	"context"
	"io"

	"github.com/DRSN-tech/nose-embedder/internal/cfg"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo реализует репозиторий снимков поверх MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// GetByKey читает снимок из MinIO целиком.
func (i *ImageRepo) GetByKey(ctx context.Context, key string) ([]byte, error) {
	obj, err := i.mc.GetObject(ctx, i.cfg.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), classify(err))
	}
	defer obj.Close()

	// GetObject ленивый: ошибки, включая отсутствие ключа, всплывают при чтении.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), classify(err))
	}

	return data, nil
}

// Exists проверяет наличие снимка по ключу.
func (i *ImageRepo) Exists(ctx context.Context, key string) (bool, error) {
	_, err := i.mc.StatObject(ctx, i.cfg.BucketName, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}

		return false, e.Wrap(whereami.WhereAmI(), classify(err))
	}

	return true, nil
}
