//go:build linux
// +build linux

package vision

import (
	"context"
	"image"
	"log"

	"github.com/blackjack/webcam"
	"github.com/pkg/errors"

	"face-censor/internal/domain/entity"
	"face-censor/internal/domain/port"
)

const (
	pixelFormatMJPEG webcam.PixelFormat = 0x47504A4D // 'MJPG'
	pixelFormatYUYV  webcam.PixelFormat = 0x56595559 // 'YUYV'

	webcamFrameTimeout = 1 // секунды
	webcamMaxTimeouts  = 5
)

// Webcam источник кадров напрямую из V4L2, без OpenCV.
type Webcam struct {
	device string
	cam    *webcam.Webcam
	stream frameStream
	format webcam.PixelFormat
	width  int
	height int
}

// OpenWebcam открывает устройство V4L2 и запускает поток.
// Предпочитает MJPEG, иначе YUYV. Нулевые width/height оставляют размер драйвера.
func OpenWebcam(device string, width, height int) (*Webcam, error) {
	cam, err := webcam.Open(device)
	if err != nil {
		return nil, &entity.CaptureError{Op: "open", Device: device, Err: errors.Wrap(err, "Can not open device")}
	}

	w, err := configureWebcam(cam, device, width, height)
	if err != nil {
		cam.Close()
		return nil, err
	}

	if err := cam.StartStreaming(); err != nil {
		cam.Close()
		return nil, &entity.CaptureError{Op: "open", Device: device, Err: errors.Wrap(err, "Can not start streaming")}
	}
	return w, nil
}

func configureWebcam(cam *webcam.Webcam, device string, width, height int) (*Webcam, error) {
	formats := cam.GetSupportedFormats()

	var format webcam.PixelFormat
	switch {
	case formats[pixelFormatMJPEG] != "":
		format = pixelFormatMJPEG
	case formats[pixelFormatYUYV] != "":
		format = pixelFormatYUYV
	default:
		return nil, &entity.CaptureError{Op: "open", Device: device, Err: errors.New("neither MJPEG nor YUYV is supported")}
	}

	if width <= 0 || height <= 0 {
		sizes := cam.GetSupportedFrameSizes(format)
		if len(sizes) == 0 {
			return nil, &entity.CaptureError{Op: "open", Device: device, Err: errors.New("no frame sizes reported")}
		}
		width, height = int(sizes[0].MaxWidth), int(sizes[0].MaxHeight)
	}

	f, w, h, err := cam.SetImageFormat(format, uint32(width), uint32(height))
	if err != nil {
		return nil, &entity.CaptureError{Op: "open", Device: device, Err: errors.Wrap(err, "Can not set image format")}
	}

	return &Webcam{
		device: device,
		cam:    cam,
		stream: cam,
		format: f,
		width:  int(w),
		height: int(h),
	}, nil
}

// Read ждёт следующий кадр и декодирует его.
func (c *Webcam) Read(ctx context.Context) (*image.RGBA, error) {
	buf, err := readFrame(ctx, c.stream, c.device)
	if err != nil {
		return nil, err
	}

	img, err := c.decode(buf)
	if err != nil {
		return nil, &entity.CaptureError{Op: "read", Device: c.device, Err: err}
	}
	return img, nil
}

// frameStream часть *webcam.Webcam, которой нужен цикл чтения.
type frameStream interface {
	WaitForFrame(timeout uint32) error
	ReadFrame() ([]byte, error)
}

// readFrame ждёт непустой кадр. Таймауты и пустые буферы считаются промахами;
// после webcamMaxTimeouts промахов подряд возвращается *entity.CaptureError.
func readFrame(ctx context.Context, stream frameStream, device string) ([]byte, error) {
	for misses := 0; ; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if misses >= webcamMaxTimeouts {
			return nil, &entity.CaptureError{Op: "read", Device: device, Err: errors.Errorf("no frame after %d attempts", misses)}
		}

		err := stream.WaitForFrame(webcamFrameTimeout)
		switch err.(type) {
		case nil:
		case *webcam.Timeout:
			misses++
			log.Printf("Frame wait timeout on %s (%d/%d)", device, misses, webcamMaxTimeouts)
			continue
		default:
			return nil, &entity.CaptureError{Op: "read", Device: device, Err: errors.Wrap(err, "Frame wait failed")}
		}

		buf, err := stream.ReadFrame()
		if err != nil {
			return nil, &entity.CaptureError{Op: "read", Device: device, Err: errors.Wrap(err, "Read frame failed")}
		}
		if len(buf) == 0 {
			misses++
			continue
		}
		return buf, nil
	}
}

func (c *Webcam) decode(buf []byte) (*image.RGBA, error) {
	if c.format == pixelFormatMJPEG {
		return decodeMJPEG(buf)
	}
	return yuyvToRGBA(buf, c.width, c.height)
}

// Close останавливает поток и закрывает устройство.
func (c *Webcam) Close() error {
	_ = c.cam.StopStreaming()
	return c.cam.Close()
}

var _ port.FrameSource = (*Webcam)(nil)
