package port

import (
	"context"
	"image"
	"time"
)

// FrameSource источник кадров (камера)
type FrameSource interface {
	// Read возвращает следующий кадр. Ошибка имеет тип *entity.CaptureError
	Read(ctx context.Context) (*image.RGBA, error)

	Close() error
}

// Display окно с результатом и опрос клавиатуры
type Display interface {
	// Show выводит кадр в окно
	Show(frame *image.RGBA) error

	// PollKey ждёт нажатия не дольше timeout, возвращает -1 если клавиша не нажата
	PollKey(timeout time.Duration) int

	Close() error
}
