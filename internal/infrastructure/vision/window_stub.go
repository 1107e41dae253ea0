//go:build !gocv
// +build !gocv

package vision

import (
	"image"
	"time"
)

type Window struct{}

// NewWindow возвращает ошибку, если сборка без тега gocv.
func NewWindow(title string) (*Window, error) {
	_ = title
	return nil, errGoCVDisabled
}

func (w *Window) Show(frame *image.RGBA) error {
	_ = frame
	return errGoCVDisabled
}

func (w *Window) PollKey(timeout time.Duration) int {
	_ = timeout
	return -1
}

func (w *Window) Close() error {
	return nil
}
