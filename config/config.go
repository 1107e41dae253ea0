package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Бэкенды захвата, детекции и цензуры.
const (
	BackendOpenCV  = "opencv"
	BackendV4L2    = "v4l2"
	BackendHaar    = "haar"
	BackendPigo    = "pigo"
	BackendImaging = "imaging"
	BackendFile    = "file"
	BackendMemory  = "memory"
)

type Config struct {
	CameraIndex    int    // индекс камеры для OpenCV
	CaptureBackend string // opencv | v4l2
	V4L2Device     string // путь устройства для v4l2
	FrameWidth     int    // 0 = размер драйвера (только v4l2)
	FrameHeight    int

	DetectorBackend      string // haar | pigo
	CascadeFile          string // haar-каскад OpenCV
	PigoCascadeFile      string // бинарный каскад pigo
	PigoMinQuality       float64
	DetectorScaleFactor  float64
	DetectorMinNeighbors int
	DetectorMinSize      int

	CensorBackend     string // imaging | opencv
	CensorMode        string // blur | pixelate
	BlurKernelSize    int
	BlurSigma         float64
	PixelBlockDivisor int

	WindowTitle      string
	KeyPollTimeout   time.Duration
	ScreenshotStore  string // file | memory (пробный запуск: снимки не пишутся на диск)
	ScreenshotDir    string
	ScreenshotPrefix string
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		CameraIndex:    0,
		CaptureBackend: BackendOpenCV,
		V4L2Device:     "/dev/video0",

		DetectorBackend:      BackendHaar,
		CascadeFile:          "/usr/share/opencv4/haarcascades/haarcascade_frontalface_default.xml",
		PigoCascadeFile:      "cascade/facefinder",
		PigoMinQuality:       5.0,
		DetectorScaleFactor:  1.1,
		DetectorMinNeighbors: 5,
		DetectorMinSize:      30,

		CensorBackend:     BackendImaging,
		CensorMode:        "blur",
		BlurKernelSize:    99,
		BlurSigma:         30,
		PixelBlockDivisor: 15,

		WindowTitle:      "Face Censor - ESC to exit",
		KeyPollTimeout:   time.Millisecond,
		ScreenshotStore:  BackendFile,
		ScreenshotDir:    ".",
		ScreenshotPrefix: "censored",
	}
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := Default()
	p := &parser{}

	cfg.CameraIndex = p.getInt("CAMERA_INDEX", cfg.CameraIndex)
	cfg.CaptureBackend = p.getString("CAPTURE_BACKEND", cfg.CaptureBackend)
	cfg.V4L2Device = p.getString("V4L2_DEVICE", cfg.V4L2Device)
	cfg.FrameWidth = p.getInt("FRAME_WIDTH", cfg.FrameWidth)
	cfg.FrameHeight = p.getInt("FRAME_HEIGHT", cfg.FrameHeight)

	cfg.DetectorBackend = p.getString("DETECTOR_BACKEND", cfg.DetectorBackend)
	cfg.CascadeFile = p.getString("CASCADE_FILE", cfg.CascadeFile)
	cfg.PigoCascadeFile = p.getString("PIGO_CASCADE_FILE", cfg.PigoCascadeFile)
	cfg.PigoMinQuality = p.getFloat("PIGO_MIN_QUALITY", cfg.PigoMinQuality)
	cfg.DetectorScaleFactor = p.getFloat("DETECTOR_SCALE_FACTOR", cfg.DetectorScaleFactor)
	cfg.DetectorMinNeighbors = p.getInt("DETECTOR_MIN_NEIGHBORS", cfg.DetectorMinNeighbors)
	cfg.DetectorMinSize = p.getInt("DETECTOR_MIN_SIZE", cfg.DetectorMinSize)

	cfg.CensorBackend = p.getString("CENSOR_BACKEND", cfg.CensorBackend)
	cfg.CensorMode = p.getString("CENSOR_MODE", cfg.CensorMode)
	cfg.BlurKernelSize = p.getInt("BLUR_KERNEL_SIZE", cfg.BlurKernelSize)
	cfg.BlurSigma = p.getFloat("BLUR_SIGMA", cfg.BlurSigma)
	cfg.PixelBlockDivisor = p.getInt("PIXEL_BLOCK_DIVISOR", cfg.PixelBlockDivisor)

	cfg.WindowTitle = p.getString("WINDOW_TITLE", cfg.WindowTitle)
	cfg.KeyPollTimeout = time.Duration(p.getInt("KEY_POLL_MS", int(cfg.KeyPollTimeout/time.Millisecond))) * time.Millisecond
	cfg.ScreenshotStore = p.getString("SCREENSHOT_STORE", cfg.ScreenshotStore)
	cfg.ScreenshotDir = p.getString("SCREENSHOT_DIR", cfg.ScreenshotDir)
	cfg.ScreenshotPrefix = p.getString("SCREENSHOT_PREFIX", cfg.ScreenshotPrefix)

	if p.err != nil {
		return nil, p.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, которые OpenCV и цензор не примут.
func (c *Config) Validate() error {
	switch c.CaptureBackend {
	case BackendOpenCV, BackendV4L2:
	default:
		return fmt.Errorf("CAPTURE_BACKEND: unknown backend %q", c.CaptureBackend)
	}
	switch c.DetectorBackend {
	case BackendHaar, BackendPigo:
	default:
		return fmt.Errorf("DETECTOR_BACKEND: unknown backend %q", c.DetectorBackend)
	}
	switch c.CensorBackend {
	case BackendImaging, BackendOpenCV:
	default:
		return fmt.Errorf("CENSOR_BACKEND: unknown backend %q", c.CensorBackend)
	}
	switch c.ScreenshotStore {
	case BackendFile, BackendMemory:
	default:
		return fmt.Errorf("SCREENSHOT_STORE: unknown store %q", c.ScreenshotStore)
	}
	switch strings.ToLower(c.CensorMode) {
	case "blur", "pixelate":
	default:
		return fmt.Errorf("CENSOR_MODE: unknown mode %q", c.CensorMode)
	}

	if c.CameraIndex < 0 {
		return fmt.Errorf("CAMERA_INDEX must not be negative, got %d", c.CameraIndex)
	}
	if c.FrameWidth < 0 || c.FrameHeight < 0 {
		return fmt.Errorf("FRAME_WIDTH/FRAME_HEIGHT must not be negative")
	}
	if c.BlurKernelSize <= 0 || c.BlurKernelSize%2 == 0 {
		return fmt.Errorf("BLUR_KERNEL_SIZE must be odd and positive, got %d", c.BlurKernelSize)
	}
	if c.BlurSigma <= 0 {
		return fmt.Errorf("BLUR_SIGMA must be positive, got %g", c.BlurSigma)
	}
	if c.PixelBlockDivisor < 1 {
		return fmt.Errorf("PIXEL_BLOCK_DIVISOR must be at least 1, got %d", c.PixelBlockDivisor)
	}
	if c.DetectorScaleFactor <= 1 {
		return fmt.Errorf("DETECTOR_SCALE_FACTOR must be greater than 1, got %g", c.DetectorScaleFactor)
	}
	if c.DetectorMinNeighbors < 0 || c.DetectorMinSize < 0 {
		return fmt.Errorf("DETECTOR_MIN_NEIGHBORS/DETECTOR_MIN_SIZE must not be negative")
	}
	if c.KeyPollTimeout <= 0 {
		return fmt.Errorf("KEY_POLL_MS must be positive")
	}
	return nil
}

// parser читает переменные окружения и запоминает первую ошибку разбора.
type parser struct {
	err error
}

func (p *parser) getString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (p *parser) getInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		p.fail(fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (p *parser) getFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		p.fail(fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func (p *parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}
