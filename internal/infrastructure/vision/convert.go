package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	"github.com/pkg/errors"
)

// toRGBA возвращает кадр как *image.RGBA с началом в (0, 0).
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// decodeMJPEG декодирует кадр MJPEG.
func decodeMJPEG(buf []byte) (*image.RGBA, error) {
	img, err := jpeg.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, errors.Wrap(err, "decode mjpeg frame")
	}
	return toRGBA(img), nil
}

// yuyvToRGBA переводит кадр YUYV 4:2:2 (Y0 U Y1 V на два пикселя) в RGBA.
func yuyvToRGBA(buf []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || width%2 != 0 {
		return nil, errors.Errorf("invalid yuyv frame size %dx%d", width, height)
	}
	if len(buf) < width*height*2 {
		return nil, errors.Errorf("short yuyv frame: %d bytes for %dx%d", len(buf), width, height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		line := buf[y*width*2 : (y+1)*width*2]
		for x := 0; x < width; x += 2 {
			p := line[x*2 : x*2+4]
			y0, u, y1, v := p[0], p[1], p[2], p[3]

			r, g, b := color.YCbCrToRGB(y0, u, v)
			dst.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
			r, g, b = color.YCbCrToRGB(y1, u, v)
			dst.SetRGBA(x+1, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return dst, nil
}
