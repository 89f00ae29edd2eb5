package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/DRSN-tech/nose-embedder/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Grpc       *GRPCConfig
	Http       *HTTPConfig
	Minio      *MinIOCfg
	Model      *ModelCfg
	Preprocess *PreprocessCfg
}

type GRPCConfig struct {
	Port           string
	NetworkMode    string
	MaxMessageSize int // максимальный размер сообщения в байтах
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	BucketName        string // Название конкретного бакета в Minio
	MinioRootUser     string // Имя пользователя для доступа к Minio
	MinioRootPassword string // Пароль для доступа к Minio
	MinioUseSSL       bool
	VectorPrefix      string // Префикс ключей, под которыми хранятся векторы
}

type ModelCfg struct {
	ModelPath         string // Локальный путь к файлу модели
	ObjectKey         string // Ключ модели в Object Storage; пустая строка — модель только локальная
	CacheDir          string // Каталог кэша для скачанных моделей
	OnnxLibraryPath   string // Путь к разделяемой библиотеке onnxruntime; пустая строка — путь по умолчанию
	DownloadRetries   int
	MaxImageSizeBytes int64 // Лимит на размер входного изображения
}

type PreprocessCfg struct {
	TargetSize       int     // Целевая сторона изображения для модели
	Channels         int     // 1 — оттенки серого, 3 — RGB
	CenterCropRatio  float64 // Доля центральной области, попадающей в crop
	EnableCenterCrop bool
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := loadModelCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	preprocess, err := loadPreprocessCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	grpc, err := loadGRPCConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Grpc:       grpc,
		Http:       http,
		Minio:      minio,
		Model:      model,
		Preprocess: preprocess,
	}, nil
}

func loadGRPCConfig(log logger.Logger) (*GRPCConfig, error) {
	const (
		defaultPort           = "50052"
		defaultNetworkMode    = "tcp"
		defaultMaxMessageSize = 10 * 1024 * 1024 // 10MB
	)

	maxMessageSize, err := parseIntEnv("GRPC_MAX_MESSAGE_SIZE", defaultMaxMessageSize)
	if err != nil {
		log.Errorf(err, "invalid GRPC_MAX_MESSAGE_SIZE")
		return nil, err
	}

	return &GRPCConfig{
		Port:           getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode:    getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
		MaxMessageSize: maxMessageSize,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         getEnvOrDefault("HTTP_PORT", defaultPort),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL       = false
		defaultEndpoint     = "minio:9000"
		defaultVectorPrefix = "pet/petDID"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	bucket := getEnv("BUCKET_NAME")
	if bucket == "" {
		err := fmt.Errorf("BUCKET_NAME is required")
		log.Errorf(err, "missing BUCKET_NAME")
		return nil, err
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        bucket,
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		VectorPrefix:      getEnvOrDefault("VECTOR_PREFIX", defaultVectorPrefix),
	}, nil
}

func loadModelCfg(log logger.Logger) (*ModelCfg, error) {
	const (
		defaultModelPath       = "embedder_model.onnx"
		defaultCacheDir        = "/tmp/models"
		defaultDownloadRetries = 3
		defaultMaxImageSize    = 10 * 1024 * 1024 // 10MB, согласован с лимитом gRPC-сообщения
	)

	retries, err := parseIntEnv("MODEL_DOWNLOAD_RETRIES", defaultDownloadRetries)
	if err != nil {
		log.Errorf(err, "invalid MODEL_DOWNLOAD_RETRIES")
		return nil, err
	}

	maxImageSize, err := parseIntEnv("MAX_IMAGE_SIZE_BYTES", defaultMaxImageSize)
	if err != nil {
		log.Errorf(err, "invalid MAX_IMAGE_SIZE_BYTES")
		return nil, err
	}

	return &ModelCfg{
		ModelPath:         getEnvOrDefault("MODEL_PATH", defaultModelPath),
		ObjectKey:         getEnv("MODEL_OBJECT_KEY"),
		CacheDir:          getEnvOrDefault("MODEL_CACHE_DIR", defaultCacheDir),
		OnnxLibraryPath:   getEnv("ONNX_LIBRARY_PATH"),
		DownloadRetries:   retries,
		MaxImageSizeBytes: int64(maxImageSize),
	}, nil
}

func loadPreprocessCfg(log logger.Logger) (*PreprocessCfg, error) {
	const (
		defaultTargetSize = 96
		defaultChannels   = 1 // модель обучена на изображениях в оттенках серого
		defaultCropRatio  = "0.6"
		defaultEnableCrop = true
	)

	targetSize, err := parseIntEnv("MODEL_INPUT_SIZE", defaultTargetSize)
	if err != nil {
		log.Errorf(err, "invalid MODEL_INPUT_SIZE")
		return nil, err
	}

	if targetSize <= 0 {
		err := fmt.Errorf("MODEL_INPUT_SIZE must be positive, got %d", targetSize)
		log.Errorf(err, "invalid MODEL_INPUT_SIZE")
		return nil, err
	}

	channels, err := parseIntEnv("MODEL_INPUT_CHANNELS", defaultChannels)
	if err != nil {
		log.Errorf(err, "invalid MODEL_INPUT_CHANNELS")
		return nil, err
	}

	if channels != 1 && channels != 3 {
		err := fmt.Errorf("MODEL_INPUT_CHANNELS must be 1 or 3, got %d", channels)
		log.Errorf(err, "invalid MODEL_INPUT_CHANNELS")
		return nil, err
	}

	cropRatio, err := strconv.ParseFloat(getEnvOrDefault("CENTER_CROP_RATIO", defaultCropRatio), 64)
	if err != nil {
		log.Errorf(err, "invalid CENTER_CROP_RATIO")
		return nil, err
	}

	if cropRatio <= 0 || cropRatio > 1 {
		err := fmt.Errorf("CENTER_CROP_RATIO must be in (0, 1], got %v", cropRatio)
		log.Errorf(err, "invalid CENTER_CROP_RATIO")
		return nil, err
	}

	enableCrop, err := strconv.ParseBool(getEnvOrDefault("ENABLE_CENTER_CROP", strconv.FormatBool(defaultEnableCrop)))
	if err != nil {
		log.Errorf(err, "invalid ENABLE_CENTER_CROP")
		return nil, err
	}

	return &PreprocessCfg{
		TargetSize:       targetSize,
		Channels:         channels,
		CenterCropRatio:  cropRatio,
		EnableCenterCrop: enableCrop,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	return intValue, nil
}
