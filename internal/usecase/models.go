package usecase

// EMBEDDER USECASE

// ExtractReq — запрос на извлечение вектора признаков из снимка носа.
type ExtractReq struct {
	ImageData   []byte
	ImageFormat string // подсказка формата (jpeg, png, ...), может быть пустой
}

// CompareReq — запрос на сравнение снимка с ранее сохранённым вектором.
type CompareReq struct {
	ImageKey string // ключ снимка в Object Storage
	PetDID   string // идентификатор животного, под которым хранится эталонный вектор
}

// SimilarityRes — результат сравнения двух векторов признаков.
type SimilarityRes struct {
	Similarity        float64 // нормализованная оценка в [0,1]
	CosineSimilarity  float64
	EuclideanDistance float64
	VectorSize        int
}

// INFRASTRUCTURE

// Tensor — подготовленный вход модели.
type Tensor struct {
	Data  []float32
	Shape []int64 // [batch, height, width, channels]
}

// ModelInfo — сведения о загруженной модели для health-ответа.
type ModelInfo struct {
	Path        string
	InputName   string
	OutputName  string
	InputShape  []int64
	OutputShape []int64
}

// HEALTH

const (
	StatusServing    = "SERVING"
	StatusNotServing = "NOT_SERVING"
)

// HealthRes — снимок готовности сервиса.
type HealthRes struct {
	Status      string
	ModelLoaded bool
	Model       ModelInfo
	Timestamp   string // ISO-8601 UTC
}

// MAPPERS

func NewSimilarityRes(similarity, cosine, euclidean float64, vectorSize int) *SimilarityRes {
	return &SimilarityRes{
		Similarity:        similarity,
		CosineSimilarity:  cosine,
		EuclideanDistance: euclidean,
		VectorSize:        vectorSize,
	}
}

func NewTensor(data []float32, shape []int64) *Tensor {
	return &Tensor{
		Data:  data,
		Shape: shape,
	}
}
