package censor

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"face-censor/internal/domain/entity"
	"face-censor/internal/domain/port"
)

// Значения по умолчанию для размытия и пикселизации.
const (
	DefaultBlurKernelSize    = 99
	DefaultBlurSigma         = 30.0
	DefaultPixelBlockDivisor = 15
)

// ImagingCensor закрывает лица средствами disintegration/imaging, без OpenCV.
type ImagingCensor struct {
	BlurKernelSize    int
	BlurSigma         float64
	PixelBlockDivisor int
}

// NewImagingCensor создаёт цензор; нулевые параметры заменяются значениями по умолчанию.
func NewImagingCensor(kernelSize int, sigma float64, divisor int) *ImagingCensor {
	if kernelSize <= 0 {
		kernelSize = DefaultBlurKernelSize
	}
	if sigma <= 0 {
		sigma = DefaultBlurSigma
	}
	if divisor <= 0 {
		divisor = DefaultPixelBlockDivisor
	}
	return &ImagingCensor{
		BlurKernelSize:    kernelSize,
		BlurSigma:         sigma,
		PixelBlockDivisor: divisor,
	}
}

// Apply закрывает каждую область в кадре. Области вне кадра обрезаются.
func (c *ImagingCensor) Apply(frame *image.RGBA, faces []entity.FaceRect, mode entity.Mode) error {
	for _, f := range faces {
		r := f.Rect().Intersect(frame.Bounds())
		if r.Empty() {
			continue
		}

		switch mode {
		case entity.ModeBlur:
			c.Blur(frame, r)
		case entity.ModePixelate:
			c.Pixelate(frame, r)
		default:
			return errors.Errorf("unsupported censor mode %q", mode)
		}
	}
	return nil
}

// Blur размывает область r по Гауссу.
func (c *ImagingCensor) Blur(frame *image.RGBA, r image.Rectangle) {
	region := imaging.Crop(frame, r)
	blurred := imaging.Blur(region, c.sigma())
	draw.Draw(frame, r, blurred, image.Point{}, draw.Src)
}

// Pixelate уменьшает область до сетки блоков (линейно) и растягивает обратно (ближайший сосед).
func (c *ImagingCensor) Pixelate(frame *image.RGBA, r image.Rectangle) {
	cols, rows := entity.PixelGrid(r.Dx(), r.Dy(), c.PixelBlockDivisor)
	region := imaging.Crop(frame, r)
	small := imaging.Resize(region, cols, rows, imaging.Linear)
	blocks := imaging.Resize(small, r.Dx(), r.Dy(), imaging.NearestNeighbor)
	draw.Draw(frame, r, blocks, image.Point{}, draw.Src)
}

// sigma ограничивает sigma размером ядра: imaging берёт радиус ceil(3*sigma).
func (c *ImagingCensor) sigma() float64 {
	return EffectiveSigma(c.BlurKernelSize, c.BlurSigma)
}

// EffectiveSigma возвращает sigma, при которой радиус ядра не выходит за kernelSize/2.
func EffectiveSigma(kernelSize int, sigma float64) float64 {
	if kernelSize <= 0 {
		return sigma
	}
	limit := float64(kernelSize/2) / 3
	if limit <= 0 {
		return 0
	}
	return min(sigma, limit)
}

var _ port.Censor = (*ImagingCensor)(nil)
