package api

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"face-censor/internal/container"
	"face-censor/internal/domain/entity"
	"face-censor/internal/infrastructure/storage"
)

type fakeSource struct {
	frames int // сколько кадров отдать до ошибки
	reads  int
	err    error
}

func (s *fakeSource) Read(ctx context.Context) (*image.RGBA, error) {
	if s.reads >= s.frames {
		return nil, s.err
	}
	s.reads++
	return image.NewRGBA(image.Rect(0, 0, 64, 48)), nil
}

func (s *fakeSource) Close() error { return nil }

type fakeDisplay struct {
	keys  []int
	shown int
}

func (d *fakeDisplay) Show(frame *image.RGBA) error {
	d.shown++
	return nil
}

func (d *fakeDisplay) PollKey(timeout time.Duration) int {
	if len(d.keys) == 0 {
		return -1
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k
}

func (d *fakeDisplay) Close() error { return nil }

type fixedDetector struct{}

func (fixedDetector) Detect(ctx context.Context, frame *image.RGBA) ([]entity.FaceRect, error) {
	return []entity.FaceRect{{X: 10, Y: 10, Width: 20, Height: 20}}, nil
}

func (fixedDetector) Close() error { return nil }

// recordingCensor запоминает режим каждого вызова.
type recordingCensor struct {
	modes []entity.Mode
}

func (c *recordingCensor) Apply(frame *image.RGBA, faces []entity.FaceRect, mode entity.Mode) error {
	c.modes = append(c.modes, mode)
	return nil
}

func newTestLoop(source *fakeSource, display *fakeDisplay, censor *recordingCensor, store *storage.MemoryScreenshotStore) *Loop {
	services := container.New(fixedDetector{}, censor, nil, store, "test")
	return NewLoop(source, display, services, entity.ModeBlur, time.Millisecond)
}

func TestLoop_ExitOnEsc(t *testing.T) {
	source := &fakeSource{frames: 10}
	display := &fakeDisplay{keys: []int{-1, 'x', entity.KeyEsc}}
	loop := newTestLoop(source, display, &recordingCensor{}, storage.NewMemoryScreenshotStore())

	require.NoError(t, loop.Run(context.Background()))
	require.Equal(t, 3, source.reads)
	require.Equal(t, 3, display.shown)
}

func TestLoop_ReadFailureStops(t *testing.T) {
	cause := &entity.CaptureError{Op: "read", Device: "0", Err: errors.New("unplugged")}
	source := &fakeSource{frames: 2, err: cause}
	display := &fakeDisplay{}
	loop := newTestLoop(source, display, &recordingCensor{}, storage.NewMemoryScreenshotStore())

	err := loop.Run(context.Background())
	var captureErr *entity.CaptureError
	require.ErrorAs(t, err, &captureErr)
	require.Equal(t, "read", captureErr.Op)
	require.Equal(t, 2, display.shown)
}

func TestLoop_CancelledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := &fakeSource{frames: 10}
	loop := newTestLoop(source, &fakeDisplay{}, &recordingCensor{}, storage.NewMemoryScreenshotStore())

	require.NoError(t, loop.Run(ctx))
	require.Equal(t, 0, source.reads)
}

func TestLoop_ModeSwitchAppliesOnNextFrame(t *testing.T) {
	censor := &recordingCensor{}
	source := &fakeSource{frames: 10}
	display := &fakeDisplay{keys: []int{'p', -1, 'b', -1}}
	loop := newTestLoop(source, display, censor, storage.NewMemoryScreenshotStore())
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		running, err := loop.Step(ctx)
		require.NoError(t, err)
		require.True(t, running)
	}

	require.Equal(t, []entity.Mode{
		entity.ModeBlur,
		entity.ModePixelate,
		entity.ModePixelate,
		entity.ModeBlur,
	}, censor.modes)
	require.Equal(t, entity.ModeBlur, loop.LastReport().Mode)
	require.Len(t, loop.LastReport().Faces, 1)
}

func TestLoop_HandleKeyIsStateless(t *testing.T) {
	censor := &recordingCensor{}
	loop := newTestLoop(&fakeSource{frames: 1}, &fakeDisplay{}, censor, storage.NewMemoryScreenshotStore())
	ctx := context.Background()

	require.True(t, loop.HandleKey(ctx, 'p', nil))
	require.True(t, loop.HandleKey(ctx, 'b', nil))
	require.Equal(t, entity.ModeBlur, loop.Mode())

	running, err := loop.Step(ctx)
	require.NoError(t, err)
	require.True(t, running)
	require.Equal(t, []entity.Mode{entity.ModeBlur}, censor.modes)
}

func TestLoop_Screenshot(t *testing.T) {
	store := storage.NewMemoryScreenshotStore()
	source := &fakeSource{frames: 10}
	display := &fakeDisplay{keys: []int{'s', entity.KeyEsc}}
	loop := newTestLoop(source, display, &recordingCensor{}, store)

	require.NoError(t, loop.Run(context.Background()))

	names := store.Names()
	require.Len(t, names, 1)
	require.Regexp(t, `^test_\d{4}\.jpg$`, names[0])
}

func TestNewLoop_Defaults(t *testing.T) {
	loop := NewLoop(&fakeSource{}, &fakeDisplay{}, nil, "", 0)
	require.Equal(t, entity.ModeBlur, loop.Mode())
	require.Equal(t, DefaultPollTimeout, loop.pollTimeout)
}
