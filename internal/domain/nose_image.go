package domain

import "github.com/DRSN-tech/nose-embedder/pkg/e"

// NoseImage описывает снимок носа, поступивший на обработку.
// Значение неизменяемо и живёт в пределах одного запроса.
type NoseImage struct {
	Data   []byte
	Format string // подсказка формата (jpeg, png, ...), может быть пустой
}

func NewNoseImage(data []byte, format string) (*NoseImage, error) {
	if len(data) == 0 {
		return nil, e.InvalidImage("image data is empty", nil)
	}

	return &NoseImage{
		Data:   data,
		Format: format,
	}, nil
}

// SizeBytes возвращает размер изображения в байтах.
func (n *NoseImage) SizeBytes() int {
	return len(n.Data)
}
