//go:build gocv
// +build gocv

package vision

import (
	"image"
	"time"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"face-censor/internal/domain/port"
)

// Window окно highgui с результатом.
type Window struct {
	win *gocv.Window
}

// NewWindow открывает окно с заголовком title.
func NewWindow(title string) (*Window, error) {
	return &Window{win: gocv.NewWindow(title)}, nil
}

// Show выводит кадр.
func (w *Window) Show(frame *image.RGBA) error {
	bgra, err := gocv.ImageToMatRGBA(frame)
	if err != nil {
		return errors.Wrap(err, "convert frame")
	}
	defer bgra.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(bgra, &bgr, gocv.ColorBGRAToBGR)

	w.win.IMShow(bgr)
	return nil
}

// PollKey ждёт клавишу не дольше timeout (минимум 1 мс).
func (w *Window) PollKey(timeout time.Duration) int {
	ms := int(timeout / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return w.win.WaitKey(ms)
}

// Close закрывает окно.
func (w *Window) Close() error {
	return w.win.Close()
}

var _ port.Display = (*Window)(nil)
