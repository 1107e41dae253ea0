package api

import (
	"context"
	"image"
	"log"
	"time"

	"face-censor/internal/container"
	"face-censor/internal/domain/entity"
	"face-censor/internal/domain/port"
)

const (
	msgControls = `Controls:
  ESC - exit
  b   - blur mode
  p   - pixelate mode
  s   - save screenshot`

	msgBlurMode     = "Blur mode active"
	msgPixelateMode = "Pixelate mode active"
	msgExit         = "Shutting down..."
)

// DefaultPollTimeout время ожидания клавиши на каждой итерации
const DefaultPollTimeout = time.Millisecond

// Loop цикл чтение → цензура → показ → опрос клавиши
type Loop struct {
	source      port.FrameSource
	display     port.Display
	services    *container.Container
	mode        entity.Mode
	pollTimeout time.Duration
	last        *entity.FrameReport
}

// NewLoop создаёт цикл с начальным режимом mode
func NewLoop(source port.FrameSource, display port.Display, services *container.Container, mode entity.Mode, pollTimeout time.Duration) *Loop {
	if mode == "" {
		mode = entity.ModeBlur
	}
	if pollTimeout <= 0 {
		pollTimeout = DefaultPollTimeout
	}
	return &Loop{
		source:      source,
		display:     display,
		services:    services,
		mode:        mode,
		pollTimeout: pollTimeout,
	}
}

// Mode возвращает текущий режим цензуры
func (l *Loop) Mode() entity.Mode {
	return l.mode
}

// LastReport возвращает отчёт последнего обработанного кадра
func (l *Loop) LastReport() *entity.FrameReport {
	return l.last
}

// Run крутит цикл до ESC, отмены ctx или ошибки чтения кадра
func (l *Loop) Run(ctx context.Context) error {
	log.Println(msgControls)

	for {
		if ctx.Err() != nil {
			log.Println(msgExit)
			return nil
		}

		running, err := l.Step(ctx)
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}

// Step выполняет одну итерацию. Возвращает false, когда цикл должен остановиться.
func (l *Loop) Step(ctx context.Context) (bool, error) {
	frame, err := l.source.Read(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false, nil
		}
		log.Printf("Frame could not be read: %v", err)
		return false, err
	}

	report, err := l.services.CensorService.Process(ctx, frame, l.mode)
	if err != nil {
		if ctx.Err() != nil {
			return false, nil
		}
		return false, err
	}
	l.last = report

	if err := l.display.Show(frame); err != nil {
		return false, err
	}

	key := l.display.PollKey(l.pollTimeout)
	return l.HandleKey(ctx, key, frame), nil
}

// HandleKey обрабатывает ровно одно нажатие. Возвращает false на ESC.
func (l *Loop) HandleKey(ctx context.Context, key int, frame *image.RGBA) bool {
	switch entity.CommandFromKey(key) {
	case entity.CommandExit:
		log.Println(msgExit)
		return false

	case entity.CommandBlur:
		l.mode = entity.ModeBlur
		log.Println(msgBlurMode)

	case entity.CommandPixelate:
		l.mode = entity.ModePixelate
		log.Println(msgPixelateMode)

	case entity.CommandScreenshot:
		l.saveScreenshot(ctx, frame)
	}

	return true
}

// saveScreenshot сохраняет кадр; ошибка записи не останавливает цикл
func (l *Loop) saveScreenshot(ctx context.Context, frame *image.RGBA) {
	if frame == nil {
		return
	}
	name, err := l.services.ScreenshotService.Save(ctx, frame)
	if err != nil {
		log.Printf("Error saving screenshot: %v", err)
		return
	}
	log.Printf("Screenshot saved: %s", name)
}
