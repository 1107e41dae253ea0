//go:build !linux
// +build !linux

package vision

import (
	"context"
	"errors"
	"image"

	"face-censor/internal/domain/entity"
)

var errV4L2Unsupported = errors.New("v4l2 capture is only supported on linux")

type Webcam struct{}

// OpenWebcam возвращает ошибку вне linux.
func OpenWebcam(device string, width, height int) (*Webcam, error) {
	_ = width
	_ = height
	return nil, &entity.CaptureError{Op: "open", Device: device, Err: errV4L2Unsupported}
}

func (c *Webcam) Read(ctx context.Context) (*image.RGBA, error) {
	_ = ctx
	return nil, errV4L2Unsupported
}

func (c *Webcam) Close() error {
	return nil
}
