//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"

	"face-censor/internal/domain/entity"
)

type CascadeDetector struct {
	ScaleFactor  float64
	MinNeighbors int
	MinSize      int
}

// NewCascadeDetector возвращает ошибку, если сборка без тега gocv.
func NewCascadeDetector(cascadeFile string, params DetectorParams) (*CascadeDetector, error) {
	_ = cascadeFile
	_ = params
	return nil, errGoCVDisabled
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *CascadeDetector) Detect(ctx context.Context, frame *image.RGBA) ([]entity.FaceRect, error) {
	_ = ctx
	_ = frame
	return nil, errGoCVDisabled
}

func (d *CascadeDetector) Close() error {
	return nil
}
