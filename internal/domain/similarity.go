package domain

import (
	"fmt"
	"math"

	"github.com/DRSN-tech/nose-embedder/pkg/e"
)

// CosineSimilarity вычисляет косинусную близость двух векторов одной
// размерности. Нулевая длина любого из векторов даёт 0.0 — это определённый
// результат, а не ошибка.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, e.VectorDimensionMismatch(
			fmt.Sprintf("vector dimensions differ: %d vs %d", len(a), len(b)))
	}

	if len(a) == 0 {
		return 0, e.InvalidRequest("vectors are empty")
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// EuclideanDistance вычисляет евклидово расстояние между двумя векторами
// одной размерности.
func EuclideanDistance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, e.VectorDimensionMismatch(
			fmt.Sprintf("vector dimensions differ: %d vs %d", len(a), len(b)))
	}

	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// NormalizedSimilarity возвращает итоговую оценку похожести в [0,1] вместе с
// исходными метриками.
//
// Правило нормализации несимметрично и зафиксировано контрактом сравнения:
// неотрицательный косинус передаётся как есть, отрицательный отображается
// аффинно из [-1,1] в [0,1] с ограничением границ. От этого правила зависят
// пороги сравнения во всей системе.
func NormalizedSimilarity(a, b []float32) (similarity, cosine, euclidean float64, err error) {
	cosine, err = CosineSimilarity(a, b)
	if err != nil {
		return 0, 0, 0, err
	}

	euclidean, err = EuclideanDistance(a, b)
	if err != nil {
		return 0, 0, 0, err
	}

	if cosine >= 0 {
		similarity = cosine
	} else {
		similarity = math.Max(0.0, math.Min(1.0, (cosine+1)/2))
	}

	return similarity, cosine, euclidean, nil
}
