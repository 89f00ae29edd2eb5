package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/nose-embedder/internal/cfg"
	"github.com/DRSN-tech/nose-embedder/internal/domain"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/DRSN-tech/nose-embedder/pkg/logger"
)

// supportedFormats — допустимые подсказки формата входного изображения.
// Пустая подсказка разрешена: формат определяется по содержимому.
var supportedFormats = map[string]struct{}{
	"jpeg": {},
	"jpg":  {},
	"png":  {},
	"webp": {},
}

// EmbedderUseCase реализует извлечение векторов признаков и сравнение
// снимков с сохранёнными векторами.
type EmbedderUseCase struct {
	engine       InferenceEngine
	preprocessor Preprocessor
	imageRepo    ImageRepository
	vectorRepo   VectorRepository
	modelCfg     *cfg.ModelCfg
	logger       logger.Logger
}

func NewEmbedderUC(
	engine InferenceEngine,
	preprocessor Preprocessor,
	imageRepo ImageRepository,
	vectorRepo VectorRepository,
	modelCfg *cfg.ModelCfg,
	logger logger.Logger,
) *EmbedderUseCase {
	return &EmbedderUseCase{
		engine:       engine,
		preprocessor: preprocessor,
		imageRepo:    imageRepo,
		vectorRepo:   vectorRepo,
		modelCfg:     modelCfg,
		logger:       logger,
	}
}

// ExtractEmbedding прогоняет снимок через конвейер валидация → препроцессинг →
// инференс и возвращает вектор признаков.
func (u *EmbedderUseCase) ExtractEmbedding(ctx context.Context, req *ExtractReq) (*domain.Embedding, error) {
	const op = "EmbedderUseCase.ExtractEmbedding"

	// Валидация до обращения к движку: дешёвые проверки первыми.
	img, err := u.validateImage(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	tensor, err := u.preprocessor.Prepare(ctx, img)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, e.Wrap(op, err)
	}

	vector, err := u.engine.Infer(ctx, tensor)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	embedding, err := domain.NewEmbedding(vector)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	u.logger.Debugf("extracted embedding, dimension: %d, image_size: %d", embedding.Dimension(), img.SizeBytes())

	return embedding, nil
}

// CompareWithStoredImage извлекает вектор из снимка по ключу в хранилище и
// сравнивает его с эталонным вектором животного.
func (u *EmbedderUseCase) CompareWithStoredImage(ctx context.Context, req *CompareReq) (*SimilarityRes, error) {
	const op = "EmbedderUseCase.CompareWithStoredImage"

	if strings.TrimSpace(req.ImageKey) == "" {
		return nil, e.Wrap(op, e.InvalidRequest("image_key is required"))
	}

	if strings.TrimSpace(req.PetDID) == "" {
		return nil, e.Wrap(op, e.InvalidRequest("pet_did is required"))
	}

	data, err := u.imageRepo.GetByKey(ctx, req.ImageKey)
	if err != nil {
		if errors.Is(err, e.ErrObjectNotFound) {
			// Отсутствие снимка по явно переданному ключу — сбой согласования
			// между сервисами, а не ошибка клиента.
			return nil, e.Wrap(op, e.InternalServerError(
				fmt.Sprintf("stored image not found: %s", req.ImageKey), err))
		}

		return nil, e.Wrap(op, err)
	}

	embedding, err := u.ExtractEmbedding(ctx, &ExtractReq{ImageData: data})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	record, err := u.vectorRepo.GetByDID(ctx, req.PetDID)
	if err != nil {
		if errors.Is(err, e.ErrObjectNotFound) {
			return nil, e.Wrap(op, e.VectorNotFound(
				fmt.Sprintf("stored vector not found for pet: %s", req.PetDID)))
		}

		return nil, e.Wrap(op, err)
	}

	if embedding.Dimension() != len(record.FeatureVector) {
		return nil, e.Wrap(op, e.VectorDimensionMismatch(fmt.Sprintf(
			"extracted vector dimension %d does not match stored dimension %d",
			embedding.Dimension(), len(record.FeatureVector))))
	}

	similarity, cosine, euclidean, err := domain.NormalizedSimilarity(embedding.Vector, record.FeatureVector)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	u.logger.Infof("compared image with stored vector, pet_did: %s, similarity: %.4f", req.PetDID, similarity)

	return NewSimilarityRes(similarity, cosine, euclidean, embedding.Dimension()), nil
}

// HealthCheck возвращает текущее состояние сервиса и модели.
func (u *EmbedderUseCase) HealthCheck(_ context.Context) (*HealthRes, error) {
	ready := u.engine.IsReady()

	status := StatusNotServing
	if ready {
		status = StatusServing
	}

	return &HealthRes{
		Status:      status,
		ModelLoaded: ready,
		Model:       u.engine.Describe(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (u *EmbedderUseCase) validateImage(req *ExtractReq) (*domain.NoseImage, error) {
	if u.modelCfg.MaxImageSizeBytes > 0 && int64(len(req.ImageData)) > u.modelCfg.MaxImageSizeBytes {
		return nil, e.ImageTooLarge(fmt.Sprintf(
			"image size %d exceeds limit %d bytes", len(req.ImageData), u.modelCfg.MaxImageSizeBytes))
	}

	if req.ImageFormat != "" {
		format := strings.ToLower(strings.TrimPrefix(req.ImageFormat, "."))
		if _, ok := supportedFormats[format]; !ok {
			return nil, e.InvalidImageFormat(fmt.Sprintf("unsupported image format: %s", req.ImageFormat))
		}
	}

	return domain.NewNoseImage(req.ImageData, req.ImageFormat)
}
