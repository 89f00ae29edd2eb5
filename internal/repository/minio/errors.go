package minio

import (
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/minio/minio-go/v7"
)

// classify переводит ошибку MinIO в доменную: отсутствие ключа отличается
// от проблем связи с хранилищем, интерпретацию выполняет usecase-слой.
func classify(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return e.Wrap(err.Error(), e.ErrObjectNotFound)
	}

	return e.StorageConnectionError("object storage request failed", err)
}
