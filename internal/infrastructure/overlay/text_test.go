package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextOverlay_Annotate(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 320, 120))
	for i := 3; i < len(frame.Pix); i += 4 {
		frame.Pix[i] = 255
	}

	NewTextOverlay().Annotate(frame, "Faces: 1 | Mode: BLUR")

	green := 0
	for y := 10; y < 36; y++ {
		for x := 8; x < 320; x++ {
			c := frame.RGBAAt(x, y)
			if c.G > 128 && c.R < 64 && c.B < 64 {
				green++
			}
		}
	}
	require.Greater(t, green, 0)

	// Ниже строки статуса кадр не тронут.
	require.Equal(t, color.RGBA{A: 255}, frame.RGBAAt(100, 100))
}
