package app

import (
	"context"
	"image"

	"face-censor/internal/domain/entity"
)

// stubDetector возвращает заранее заданные области.
type stubDetector struct {
	faces []entity.FaceRect
	err   error
	calls int
}

func (d *stubDetector) Detect(ctx context.Context, frame *image.RGBA) ([]entity.FaceRect, error) {
	d.calls++
	return d.faces, d.err
}

func (d *stubDetector) Close() error { return nil }

type recordingAnnotator struct {
	texts []string
}

func (a *recordingAnnotator) Annotate(frame *image.RGBA, text string) {
	a.texts = append(a.texts, text)
}
