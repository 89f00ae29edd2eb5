package domain

import "time"

// VectorRecordVersion — текущая версия формата хранения.
const VectorRecordVersion = "1.0"

// VectorRecord — JSON-объект, в виде которого вектор признаков хранится
// в Object Storage. Формат разделяется с внешними сервисами и меняется
// только с повышением версии.
type VectorRecord struct {
	PetDID        string    `json:"petDID"`
	FeatureVector []float32 `json:"featureVector"`
	VectorSize    int       `json:"vectorSize"`
	CreatedAt     string    `json:"createdAt"` // ISO-8601 UTC
	Version       string    `json:"version"`
}

func NewVectorRecord(petDID string, vector []float32) *VectorRecord {
	return &VectorRecord{
		PetDID:        petDID,
		FeatureVector: vector,
		VectorSize:    len(vector),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Version:       VectorRecordVersion,
	}
}
