package vision

import (
	"context"
	"image"
	"math"
	"os"

	pigo "github.com/esimov/pigo/core"
	"github.com/pkg/errors"

	"face-censor/internal/domain/entity"
	"face-censor/internal/domain/port"
)

const (
	DefaultPigoMinQuality = 5.0
	pigoShiftFactor       = 0.1
	pigoIoUThreshold      = 0.2
)

// PigoDetector ищет лица каскадом pigo (чистый Go, без OpenCV).
type PigoDetector struct {
	Params     DetectorParams
	MinQuality float32

	classifier *pigo.Pigo
}

// NewPigoDetector читает и распаковывает бинарный каскад facefinder.
func NewPigoDetector(cascadeFile string, params DetectorParams, minQuality float64) (*PigoDetector, error) {
	data, err := os.ReadFile(cascadeFile)
	if err != nil {
		return nil, &entity.AssetLoadError{Path: cascadeFile, Err: err}
	}

	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, &entity.AssetLoadError{Path: cascadeFile, Err: errors.Wrap(err, "unpack cascade")}
	}

	if minQuality <= 0 {
		minQuality = DefaultPigoMinQuality
	}
	return &PigoDetector{
		Params:     params.withDefaults(),
		MinQuality: float32(minQuality),
		classifier: classifier,
	}, nil
}

// Detect переводит кадр в оттенки серого и запускает каскад.
func (d *PigoDetector) Detect(ctx context.Context, frame *image.RGBA) ([]entity.FaceRect, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bounds := frame.Bounds()
	cols, rows := bounds.Dx(), bounds.Dy()
	if cols == 0 || rows == 0 {
		return nil, errors.New("empty frame")
	}

	params := pigo.CascadeParams{
		MinSize:     pigoMinWindow(d.Params.MinSize, d.Params.ScaleFactor),
		MaxSize:     max(cols, rows),
		ShiftFactor: pigoShiftFactor,
		ScaleFactor: d.Params.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(frame),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(params, 0)
	dets = d.classifier.ClusterDetections(dets, pigoIoUThreshold)

	return detectionsToFaces(dets, d.MinQuality, bounds), nil
}

// Close ничего не освобождает: каскад pigo живёт в памяти Go.
func (d *PigoDetector) Close() error {
	return nil
}

// detectionsToFaces переводит центр и размер детекции в прямоугольники внутри кадра.
func detectionsToFaces(dets []pigo.Detection, minQuality float32, bounds image.Rectangle) []entity.FaceRect {
	faces := make([]entity.FaceRect, 0, len(dets))
	for _, det := range dets {
		if det.Q < minQuality || det.Scale <= 0 {
			continue
		}
		half := det.Scale / 2
		r := image.Rect(det.Col-half, det.Row-half, det.Col+half, det.Row+half).Add(bounds.Min)
		face := entity.FaceRectFromImage(r).Clamp(bounds)
		if face.Empty() {
			continue
		}
		faces = append(faces, face)
	}
	return faces
}

// pigoMinWindow возвращает наименьшее окно, которое pigo может увеличивать:
// RunCascade растит окно как int(size*scale) и зацикливается, если оно не растёт.
func pigoMinWindow(minSize int, scale float64) int {
	grow := int(math.Ceil(1 / (scale - 1)))
	return max(minSize, grow, 1)
}

var _ port.FaceDetector = (*PigoDetector)(nil)
