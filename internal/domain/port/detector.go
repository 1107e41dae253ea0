package port

import (
	"context"
	"image"

	"face-censor/internal/domain/entity"
)

// FaceDetector интерфейс детектора лиц
type FaceDetector interface {
	// Detect ищет лица на кадре и возвращает их области
	Detect(ctx context.Context, frame *image.RGBA) ([]entity.FaceRect, error)

	// Close освобождает загруженную модель
	Close() error
}
