// Package preprocess готовит снимок носа к подаче в модель: декодирование,
// центральный crop, приведение каналов, ресайз и нормализация значений.
package preprocess

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/DRSN-tech/nose-embedder/internal/cfg"
	"github.com/DRSN-tech/nose-embedder/internal/domain"
	"github.com/DRSN-tech/nose-embedder/internal/usecase"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/disintegration/imaging"
)

type ImagePreprocessor struct {
	cfg *cfg.PreprocessCfg
}

func NewImagePreprocessor(cfg *cfg.PreprocessCfg) *ImagePreprocessor {
	return &ImagePreprocessor{cfg: cfg}
}

// Prepare выполняет полный конвейер препроцессинга. Любой сбой декодирования
// или пустой результат трактуется как некорректное изображение.
func (p *ImagePreprocessor) Prepare(ctx context.Context, img *domain.NoseImage) (*usecase.Tensor, error) {
	decoded, err := imaging.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, e.InvalidImage("failed to decode image", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.cfg.EnableCenterCrop {
		bounds := decoded.Bounds()
		rect := cropRect(bounds.Dx(), bounds.Dy(), p.cfg.CenterCropRatio)
		if rect.Empty() {
			return nil, e.InvalidImage(
				fmt.Sprintf("image %dx%d is too small for center crop", bounds.Dx(), bounds.Dy()), nil)
		}

		decoded = imaging.Crop(decoded, rect)
	}

	if p.cfg.Channels == 1 {
		decoded = imaging.Grayscale(decoded)
	}

	resized := imaging.Resize(decoded, p.cfg.TargetSize, p.cfg.TargetSize, imaging.Lanczos)

	return p.toTensor(resized), nil
}

// cropRect вычисляет прямоугольник центрального crop для изображения w x h.
// Сторона crop — целая часть произведения стороны на ratio, смещение —
// целочисленная половина остатка. Округление зафиксировано: от него зависит
// воспроизводимость векторов между версиями сервиса.
func cropRect(w, h int, ratio float64) image.Rectangle {
	cw := int(float64(w) * ratio)
	ch := int(float64(h) * ratio)
	x := (w - cw) / 2
	y := (h - ch) / 2

	return image.Rect(x, y, x+cw, y+ch)
}

// toTensor раскладывает пиксели в float32-тензор формы [1, size, size, channels]
// со значениями в [0,1].
func (p *ImagePreprocessor) toTensor(img *image.NRGBA) *usecase.Tensor {
	size := p.cfg.TargetSize
	channels := p.cfg.Channels

	data := make([]float32, size*size*channels)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			offset := img.PixOffset(x, y)
			base := (y*size + x) * channels

			if channels == 1 {
				// После Grayscale R == G == B, достаточно одного канала.
				data[base] = float32(img.Pix[offset]) / 255.0
				continue
			}

			data[base] = float32(img.Pix[offset]) / 255.0
			data[base+1] = float32(img.Pix[offset+1]) / 255.0
			data[base+2] = float32(img.Pix[offset+2]) / 255.0
		}
	}

	shape := []int64{1, int64(size), int64(size), int64(channels)}

	return usecase.NewTensor(data, shape)
}
