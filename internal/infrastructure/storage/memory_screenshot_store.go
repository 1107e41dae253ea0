package storage

import (
	"context"
	"image"
	"sort"
	"sync"

	"github.com/disintegration/imaging"

	"face-censor/internal/domain/port"
)

// MemoryScreenshotStore in-memory хранилище снимков
type MemoryScreenshotStore struct {
	mu     sync.RWMutex
	frames map[string]image.Image
}

// NewMemoryScreenshotStore создаёт новое in-memory хранилище
func NewMemoryScreenshotStore() *MemoryScreenshotStore {
	return &MemoryScreenshotStore{
		frames: make(map[string]image.Image),
	}
}

// Save сохраняет копию кадра: кадр переиспользуется в следующей итерации
func (s *MemoryScreenshotStore) Save(ctx context.Context, name string, frame image.Image) error {
	cp := imaging.Clone(frame)

	s.mu.Lock()
	s.frames[name] = cp
	s.mu.Unlock()

	return nil
}

// Get возвращает снимок по имени
func (s *MemoryScreenshotStore) Get(name string) (image.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.frames[name]
	return img, ok
}

// Names возвращает отсортированные имена снимков
func (s *MemoryScreenshotStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.frames))
	for name := range s.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Проверка реализации интерфейса
var _ port.ScreenshotStore = (*MemoryScreenshotStore)(nil)
