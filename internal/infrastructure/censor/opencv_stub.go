//go:build !gocv
// +build !gocv

package censor

import (
	"errors"
	"image"

	"face-censor/internal/domain/entity"
)

type OpenCVCensor struct {
	BlurKernelSize    int
	BlurSigma         float64
	PixelBlockDivisor int
}

// NewOpenCVCensor возвращает ошибку, если сборка без тега gocv.
func NewOpenCVCensor(kernelSize int, sigma float64, divisor int) (*OpenCVCensor, error) {
	return nil, errors.New("gocv build tag is not enabled")
}

// Apply возвращает ошибку, если сборка без тега gocv.
func (c *OpenCVCensor) Apply(frame *image.RGBA, faces []entity.FaceRect, mode entity.Mode) error {
	_ = frame
	_ = faces
	_ = mode
	return errors.New("gocv build tag is not enabled")
}
