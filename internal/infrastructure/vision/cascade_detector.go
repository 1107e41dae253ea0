//go:build gocv
// +build gocv

package vision

import (
	"context"
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"face-censor/internal/domain/entity"
	"face-censor/internal/domain/port"
)

// CascadeDetector ищет лица haar-каскадом OpenCV.
type CascadeDetector struct {
	ScaleFactor  float64
	MinNeighbors int
	MinSize      int

	classifier gocv.CascadeClassifier
}

// NewCascadeDetector загружает каскад из cascadeFile.
// Если файл не читается, возвращает *entity.AssetLoadError.
func NewCascadeDetector(cascadeFile string, params DetectorParams) (*CascadeDetector, error) {
	params = params.withDefaults()

	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cascadeFile) {
		classifier.Close()
		return nil, &entity.AssetLoadError{
			Path: cascadeFile,
			Err:  errors.New("cascade classifier could not be loaded"),
		}
	}

	return &CascadeDetector{
		ScaleFactor:  params.ScaleFactor,
		MinNeighbors: params.MinNeighbors,
		MinSize:      params.MinSize,
		classifier:   classifier,
	}, nil
}

// Detect переводит кадр в оттенки серого и запускает каскад.
func (d *CascadeDetector) Detect(ctx context.Context, frame *image.RGBA) ([]entity.FaceRect, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mat, err := gocv.ImageToMatRGBA(frame)
	if err != nil {
		return nil, errors.Wrap(err, "convert frame")
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty frame")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRAToGray)

	minSize := image.Pt(d.MinSize, d.MinSize)
	rects := d.classifier.DetectMultiScaleWithParams(gray, d.ScaleFactor, d.MinNeighbors, 0, minSize, image.Point{})

	faces := make([]entity.FaceRect, 0, len(rects))
	for _, r := range rects {
		faces = append(faces, entity.FaceRectFromImage(r))
	}
	return faces, nil
}

// Close освобождает каскад.
func (d *CascadeDetector) Close() error {
	return d.classifier.Close()
}

var _ port.FaceDetector = (*CascadeDetector)(nil)
