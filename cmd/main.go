package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/v22/daemon"

	"face-censor/config"
	"face-censor/internal/api"
	"face-censor/internal/container"
	"face-censor/internal/domain/entity"
	"face-censor/internal/domain/port"
	"face-censor/internal/infrastructure/censor"
	"face-censor/internal/infrastructure/overlay"
	"face-censor/internal/infrastructure/storage"
	"face-censor/internal/infrastructure/vision"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Face censor stopped: %v", err)
		os.Exit(exitCode(err))
	}
}

// exitCode: ошибки камеры (не открылась, кадр не прочитан) завершают программу штатно,
// остальные (конфигурация, модель детектора, окно) с кодом 1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var captureErr *entity.CaptureError
	if errors.As(err, &captureErr) {
		return 0
	}
	return 1
}

// run держит все ресурсы: defer освобождает их на любом пути выхода.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	mode, err := entity.ParseMode(cfg.CensorMode)
	if err != nil {
		return err
	}

	log.Println("Starting face censor...")

	detector, err := newDetector(cfg)
	if err != nil {
		return err
	}
	defer detector.Close()

	faceCensor, err := newCensor(cfg)
	if err != nil {
		return err
	}

	source, err := newSource(cfg)
	if err != nil {
		log.Println("Camera could not be opened. Make sure the camera is connected.")
		return err
	}
	defer source.Close()
	log.Println("Camera opened")

	window, err := vision.NewWindow(cfg.WindowTitle)
	if err != nil {
		return err
	}
	defer window.Close()

	store := newScreenshotStore(cfg)
	services := container.New(detector, faceCensor, overlay.NewTextOverlay(), store, cfg.ScreenshotPrefix)
	loop := api.NewLoop(source, window, services, mode, cfg.KeyPollTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Вне systemd уведомления ничего не делают.
	_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)
	defer daemon.SdNotify(false, daemon.SdNotifyStopping)

	if err := loop.Run(ctx); err != nil {
		return err
	}

	log.Println("Camera closed. Bye!")
	return nil
}

func newDetector(cfg *config.Config) (port.FaceDetector, error) {
	params := vision.DetectorParams{
		ScaleFactor:  cfg.DetectorScaleFactor,
		MinNeighbors: cfg.DetectorMinNeighbors,
		MinSize:      cfg.DetectorMinSize,
	}

	switch cfg.DetectorBackend {
	case config.BackendPigo:
		return vision.NewPigoDetector(cfg.PigoCascadeFile, params, cfg.PigoMinQuality)
	default:
		return vision.NewCascadeDetector(cfg.CascadeFile, params)
	}
}

func newCensor(cfg *config.Config) (port.Censor, error) {
	switch cfg.CensorBackend {
	case config.BackendOpenCV:
		return censor.NewOpenCVCensor(cfg.BlurKernelSize, cfg.BlurSigma, cfg.PixelBlockDivisor)
	default:
		return censor.NewImagingCensor(cfg.BlurKernelSize, cfg.BlurSigma, cfg.PixelBlockDivisor), nil
	}
}

func newSource(cfg *config.Config) (port.FrameSource, error) {
	switch cfg.CaptureBackend {
	case config.BackendV4L2:
		return vision.OpenWebcam(cfg.V4L2Device, cfg.FrameWidth, cfg.FrameHeight)
	default:
		return vision.OpenCamera(cfg.CameraIndex)
	}
}

func newScreenshotStore(cfg *config.Config) port.ScreenshotStore {
	if cfg.ScreenshotStore == config.BackendMemory {
		log.Println("Dry run: screenshots are kept in memory")
		return storage.NewMemoryScreenshotStore()
	}
	return storage.NewFileScreenshotStore(cfg.ScreenshotDir)
}
