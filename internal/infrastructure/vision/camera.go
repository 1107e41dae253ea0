//go:build gocv
// +build gocv

package vision

import (
	"context"
	"image"
	"strconv"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"face-censor/internal/domain/entity"
	"face-censor/internal/domain/port"
)

// Camera источник кадров через gocv.VideoCapture.
type Camera struct {
	device string
	cap    *gocv.VideoCapture
	mat    gocv.Mat
}

// OpenCamera открывает камеру по индексу.
func OpenCamera(index int) (*Camera, error) {
	device := strconv.Itoa(index)

	vc, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return nil, &entity.CaptureError{Op: "open", Device: device, Err: err}
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, &entity.CaptureError{Op: "open", Device: device, Err: errors.New("device is not opened")}
	}

	return &Camera{device: device, cap: vc, mat: gocv.NewMat()}, nil
}

// Read читает следующий кадр.
func (c *Camera) Read(ctx context.Context) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ok := c.cap.Read(&c.mat); !ok || c.mat.Empty() {
		return nil, &entity.CaptureError{Op: "read", Device: c.device, Err: errors.New("no frame")}
	}

	img, err := c.mat.ToImage()
	if err != nil {
		return nil, &entity.CaptureError{Op: "read", Device: c.device, Err: errors.Wrap(err, "convert frame")}
	}
	return toRGBA(img), nil
}

// Close освобождает камеру.
func (c *Camera) Close() error {
	c.mat.Close()
	return c.cap.Close()
}

var _ port.FrameSource = (*Camera)(nil)
