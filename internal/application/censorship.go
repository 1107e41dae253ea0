package app

import (
	"context"
	"errors"
	"fmt"
	"image"

	"face-censor/internal/domain/entity"
	"face-censor/internal/domain/port"
)

// CensorService обрабатывает один кадр: поиск лиц, цензура, строка статуса.
type CensorService struct {
	detector  port.FaceDetector
	censor    port.Censor
	annotator port.Annotator
}

// NewCensorService создаёт сервис обработки кадров. annotator может быть nil.
func NewCensorService(detector port.FaceDetector, censor port.Censor, annotator port.Annotator) *CensorService {
	return &CensorService{
		detector:  detector,
		censor:    censor,
		annotator: annotator,
	}
}

// Process закрывает найденные лица в кадре режимом mode и возвращает отчёт.
// Кадр изменяется на месте.
func (s *CensorService) Process(ctx context.Context, frame *image.RGBA, mode entity.Mode) (*entity.FrameReport, error) {
	if s.detector == nil || s.censor == nil {
		return nil, errors.New("censor service is not configured")
	}
	if frame == nil {
		return nil, errors.New("empty frame")
	}

	detected, err := s.detector.Detect(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("detect faces: %w", err)
	}

	// Детектор обязан вернуть области внутри кадра, но проверяем сами.
	bounds := frame.Bounds()
	faces := make([]entity.FaceRect, 0, len(detected))
	for _, f := range detected {
		f = f.Clamp(bounds)
		if f.Empty() {
			continue
		}
		faces = append(faces, f)
	}

	if err := s.censor.Apply(frame, faces, mode); err != nil {
		return nil, fmt.Errorf("censor faces: %w", err)
	}

	report := &entity.FrameReport{Faces: faces, Mode: mode}
	if s.annotator != nil {
		s.annotator.Annotate(frame, report.Status())
	}

	return report, nil
}
