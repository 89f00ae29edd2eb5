package domain

import (
	"fmt"
	"math"

	"github.com/DRSN-tech/nose-embedder/pkg/e"
)

// Embedding — вектор признаков, извлечённый из снимка носа.
// Значение неизменяемо после конструирования.
type Embedding struct {
	Vector []float32
}

// NewEmbedding валидирует сырой выход модели. Пустой вектор или нечисловой
// элемент — нарушение внутреннего инварианта: при корректной модели сюда
// такие данные не попадают.
func NewEmbedding(vector []float32) (*Embedding, error) {
	if len(vector) == 0 {
		return nil, e.InternalServerError("embedding vector is empty", nil)
	}

	for i, v := range vector {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, e.InternalServerError(
				fmt.Sprintf("embedding vector contains non-finite value at index %d", i), nil)
		}
	}

	return &Embedding{Vector: vector}, nil
}

// Dimension возвращает размерность вектора.
func (emb *Embedding) Dimension() int {
	return len(emb.Vector)
}
