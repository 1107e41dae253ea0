//go:build gocv
// +build gocv

package censor

import (
	"image"
	"image/draw"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"face-censor/internal/domain/entity"
	"face-censor/internal/domain/port"
)

// OpenCVCensor закрывает лица через gocv: точное ядро GaussianBlur и Resize.
type OpenCVCensor struct {
	BlurKernelSize    int
	BlurSigma         float64
	PixelBlockDivisor int
}

// NewOpenCVCensor создаёт цензор на OpenCV. Размер ядра должен быть нечётным.
func NewOpenCVCensor(kernelSize int, sigma float64, divisor int) (*OpenCVCensor, error) {
	if kernelSize <= 0 || kernelSize%2 == 0 {
		return nil, errors.Errorf("blur kernel size must be odd and positive, got %d", kernelSize)
	}
	if divisor <= 0 {
		divisor = DefaultPixelBlockDivisor
	}
	return &OpenCVCensor{
		BlurKernelSize:    kernelSize,
		BlurSigma:         sigma,
		PixelBlockDivisor: divisor,
	}, nil
}

// Apply закрывает каждую область в кадре.
func (c *OpenCVCensor) Apply(frame *image.RGBA, faces []entity.FaceRect, mode entity.Mode) error {
	for _, f := range faces {
		r := f.Rect().Intersect(frame.Bounds())
		if r.Empty() {
			continue
		}
		if err := c.apply(frame, r, mode); err != nil {
			return err
		}
	}
	return nil
}

func (c *OpenCVCensor) apply(frame *image.RGBA, r image.Rectangle, mode entity.Mode) error {
	src, err := gocv.ImageToMatRGBA(cropRGBA(frame, r))
	if err != nil {
		return errors.Wrap(err, "convert face region")
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	switch mode {
	case entity.ModeBlur:
		k := c.BlurKernelSize
		gocv.GaussianBlur(src, &dst, image.Pt(k, k), c.BlurSigma, c.BlurSigma, gocv.BorderDefault)
	case entity.ModePixelate:
		cols, rows := entity.PixelGrid(r.Dx(), r.Dy(), c.PixelBlockDivisor)
		small := gocv.NewMat()
		defer small.Close()
		gocv.Resize(src, &small, image.Pt(cols, rows), 0, 0, gocv.InterpolationLinear)
		gocv.Resize(small, &dst, image.Pt(r.Dx(), r.Dy()), 0, 0, gocv.InterpolationNearestNeighbor)
	default:
		return errors.Errorf("unsupported censor mode %q", mode)
	}

	out, err := dst.ToImage()
	if err != nil {
		return errors.Wrap(err, "convert censored region")
	}
	draw.Draw(frame, r, out, out.Bounds().Min, draw.Src)
	return nil
}

// cropRGBA копирует область в плотный буфер: ImageToMatRGBA не учитывает Stride вырезанной области.
func cropRGBA(frame *image.RGBA, r image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), frame, r.Min, draw.Src)
	return dst
}

var _ port.Censor = (*OpenCVCensor)(nil)
