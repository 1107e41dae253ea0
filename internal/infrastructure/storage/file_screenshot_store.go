package storage

import (
	"context"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"face-censor/internal/domain/port"
)

const jpegQuality = 95

// FileScreenshotStore пишет снимки в JPEG в каталог Dir
type FileScreenshotStore struct {
	Dir string
}

// NewFileScreenshotStore создаёт хранилище; пустой dir означает рабочий каталог
func NewFileScreenshotStore(dir string) *FileScreenshotStore {
	if dir == "" {
		dir = "."
	}
	return &FileScreenshotStore{Dir: dir}
}

// Save кодирует кадр в JPEG и пишет его под именем name
func (s *FileScreenshotStore) Save(ctx context.Context, name string, frame image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "create screenshot dir %s", s.Dir)
	}

	path := filepath.Join(s.Dir, filepath.Base(name))
	if err := imaging.Save(frame, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.ScreenshotStore = (*FileScreenshotStore)(nil)
