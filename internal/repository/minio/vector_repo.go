package minio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/DRSN-tech/nose-embedder/internal/cfg"
	"github.com/DRSN-tech/nose-embedder/internal/domain"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// VectorRepo хранит векторы признаков в MinIO как JSON-объекты.
// Ключ объекта детерминирован: <prefix>/<petDID>.json.
type VectorRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewVectorRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *VectorRepo {
	return &VectorRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// GetByDID читает и валидирует сохранённый вектор животного.
func (v *VectorRepo) GetByDID(ctx context.Context, petDID string) (*domain.VectorRecord, error) {
	obj, err := v.mc.GetObject(ctx, v.cfg.BucketName, v.objectKey(petDID), minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), classify(err))
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), classify(err))
	}

	record, err := decodeRecord(petDID, data)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return record, nil
}

// decodeRecord разбирает сохранённую запись и проверяет её целостность.
// Повреждённое содержимое — ошибка хранения, а не отсутствие вектора.
func decodeRecord(petDID string, data []byte) (*domain.VectorRecord, error) {
	var record domain.VectorRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, e.InternalServerError(fmt.Sprintf("stored vector for pet %s is not valid JSON", petDID), err)
	}

	if len(record.FeatureVector) == 0 {
		return nil, e.InternalServerError(fmt.Sprintf("stored vector for pet %s has empty featureVector", petDID), nil)
	}

	if record.VectorSize != len(record.FeatureVector) {
		return nil, e.InternalServerError(fmt.Sprintf(
			"stored vector for pet %s has inconsistent vectorSize: %d declared, %d actual",
			petDID, record.VectorSize, len(record.FeatureVector)), nil)
	}

	return &record, nil
}

// Save сериализует запись вектора и кладёт её в MinIO.
func (v *VectorRepo) Save(ctx context.Context, record *domain.VectorRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	_, err = v.mc.PutObject(ctx, v.cfg.BucketName, v.objectKey(record.PetDID),
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), classify(err))
	}

	return nil
}

// Exists проверяет наличие сохранённого вектора животного.
func (v *VectorRepo) Exists(ctx context.Context, petDID string) (bool, error) {
	_, err := v.mc.StatObject(ctx, v.cfg.BucketName, v.objectKey(petDID), minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}

		return false, e.Wrap(whereami.WhereAmI(), classify(err))
	}

	return true, nil
}

func (v *VectorRepo) objectKey(petDID string) string {
	return fmt.Sprintf("%s/%s.json", v.cfg.VectorPrefix, petDID)
}
