//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"
	"strconv"

	"face-censor/internal/domain/entity"
)

type Camera struct{}

// OpenCamera возвращает ошибку, если сборка без тега gocv.
func OpenCamera(index int) (*Camera, error) {
	return nil, &entity.CaptureError{Op: "open", Device: strconv.Itoa(index), Err: errGoCVDisabled}
}

// Read возвращает ошибку, если сборка без тега gocv.
func (c *Camera) Read(ctx context.Context) (*image.RGBA, error) {
	_ = ctx
	return nil, errGoCVDisabled
}

func (c *Camera) Close() error {
	return nil
}
