package port

import (
	"image"

	"face-censor/internal/domain/entity"
)

// Censor закрывает области лиц прямо в кадре
type Censor interface {
	// Apply размывает или пикселизирует каждую область в выбранном режиме
	Apply(frame *image.RGBA, faces []entity.FaceRect, mode entity.Mode) error
}

// Annotator выводит строку статуса поверх кадра
type Annotator interface {
	Annotate(frame *image.RGBA, text string)
}
