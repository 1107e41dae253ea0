package vision

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	pigo "github.com/esimov/pigo/core"
	"github.com/stretchr/testify/require"

	"face-censor/internal/domain/entity"
)

func TestDetectionsToFaces(t *testing.T) {
	bounds := image.Rect(0, 0, 200, 100)
	dets := []pigo.Detection{
		{Row: 50, Col: 50, Scale: 40, Q: 9},  // целиком в кадре
		{Row: 10, Col: 190, Scale: 40, Q: 7}, // выходит за угол
		{Row: 50, Col: 100, Scale: 40, Q: 2}, // слишком низкое качество
		{Row: 50, Col: 100, Scale: 0, Q: 9},  // пустая
	}

	faces := detectionsToFaces(dets, 5, bounds)
	require.Equal(t, []entity.FaceRect{
		{X: 30, Y: 30, Width: 40, Height: 40},
		{X: 170, Y: 0, Width: 30, Height: 30},
	}, faces)
}

func TestNewPigoDetector_MissingCascade(t *testing.T) {
	_, err := NewPigoDetector(filepath.Join(t.TempDir(), "facefinder"), DetectorParams{}, 0)

	var assetErr *entity.AssetLoadError
	require.True(t, errors.As(err, &assetErr))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDetectorParamsDefaults(t *testing.T) {
	p := DetectorParams{}.withDefaults()
	require.Equal(t, DefaultScaleFactor, p.ScaleFactor)
	require.Equal(t, 0, p.MinNeighbors)
	require.Equal(t, 0, p.MinSize)

	p = DetectorParams{ScaleFactor: 1.3, MinNeighbors: 3, MinSize: 48}.withDefaults()
	require.Equal(t, 1.3, p.ScaleFactor)
	require.Equal(t, 3, p.MinNeighbors)
	require.Equal(t, 48, p.MinSize)

	p = DetectorParams{ScaleFactor: 0.5, MinNeighbors: -1, MinSize: -1}.withDefaults()
	require.Equal(t, DefaultScaleFactor, p.ScaleFactor)
	require.Equal(t, DefaultMinNeighbors, p.MinNeighbors)
	require.Equal(t, DefaultMinSize, p.MinSize)
}

func TestPigoMinWindow(t *testing.T) {
	require.Equal(t, 30, pigoMinWindow(30, 1.1))
	require.Equal(t, 10, pigoMinWindow(0, 1.1))
	require.Equal(t, 20, pigoMinWindow(5, 1.05))
	require.Equal(t, 1, pigoMinWindow(0, 3))

	// Окно минимального размера действительно растёт.
	for _, scale := range []float64{1.05, 1.1, 1.25, 2} {
		w := pigoMinWindow(0, scale)
		require.Greater(t, int(float64(w)*scale), w, "scale %v", scale)
	}
}
