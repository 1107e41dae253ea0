package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand/v2"

	"face-censor/internal/domain/port"
)

const DefaultScreenshotPrefix = "censored"

type ScreenshotService struct {
	store  port.ScreenshotStore
	prefix string
	rnd    *rand.Rand
}

// NewScreenshotService создаёт сервис снимков. rnd == nil означает глобальный генератор.
func NewScreenshotService(store port.ScreenshotStore, prefix string, rnd *rand.Rand) *ScreenshotService {
	if prefix == "" {
		prefix = DefaultScreenshotPrefix
	}
	return &ScreenshotService{store: store, prefix: prefix, rnd: rnd}
}

// Name возвращает новое имя файла со случайным четырёхзначным суффиксом.
func (s *ScreenshotService) Name() string {
	var n int
	if s.rnd != nil {
		n = 1000 + s.rnd.IntN(9000)
	} else {
		n = 1000 + rand.IntN(9000)
	}
	return fmt.Sprintf("%s_%d.jpg", s.prefix, n)
}

// Save сохраняет кадр и возвращает имя снимка.
func (s *ScreenshotService) Save(ctx context.Context, frame image.Image) (string, error) {
	if s.store == nil {
		return "", errors.New("screenshot store is not configured")
	}
	if frame == nil {
		return "", errors.New("empty frame")
	}

	name := s.Name()
	if err := s.store.Save(ctx, name, frame); err != nil {
		return "", fmt.Errorf("save screenshot %s: %w", name, err)
	}
	return name, nil
}
