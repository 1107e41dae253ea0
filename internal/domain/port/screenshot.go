package port

import (
	"context"
	"image"
)

// ScreenshotStore хранилище снимков экрана
type ScreenshotStore interface {
	// Save сохраняет кадр под указанным именем
	Save(ctx context.Context, name string, frame image.Image) error
}
