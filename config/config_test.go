package config

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 99, cfg.BlurKernelSize)
	require.Equal(t, 30.0, cfg.BlurSigma)
	require.Equal(t, 15, cfg.PixelBlockDivisor)
	require.Equal(t, 1.1, cfg.DetectorScaleFactor)
	require.Equal(t, 5, cfg.DetectorMinNeighbors)
	require.Equal(t, 30, cfg.DetectorMinSize)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CAMERA_INDEX", "2")
	t.Setenv("DETECTOR_BACKEND", "pigo")
	t.Setenv("CENSOR_MODE", "pixelate")
	t.Setenv("BLUR_KERNEL_SIZE", "51")
	t.Setenv("BLUR_SIGMA", "12.5")
	t.Setenv("PIXEL_BLOCK_DIVISOR", "10")
	t.Setenv("KEY_POLL_MS", "15")
	t.Setenv("SCREENSHOT_DIR", "/tmp/shots")
	t.Setenv("SCREENSHOT_STORE", "memory")
	t.Setenv("DETECTOR_MIN_NEIGHBORS", "0")
	t.Setenv("DETECTOR_MIN_SIZE", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2, cfg.CameraIndex)
	require.Equal(t, BackendPigo, cfg.DetectorBackend)
	require.Equal(t, "pixelate", cfg.CensorMode)
	require.Equal(t, 51, cfg.BlurKernelSize)
	require.Equal(t, 12.5, cfg.BlurSigma)
	require.Equal(t, 10, cfg.PixelBlockDivisor)
	require.Equal(t, 15*time.Millisecond, cfg.KeyPollTimeout)
	require.Equal(t, "/tmp/shots", cfg.ScreenshotDir)
	require.Equal(t, BackendMemory, cfg.ScreenshotStore)
	require.Equal(t, 0, cfg.DetectorMinNeighbors)
	require.Equal(t, 0, cfg.DetectorMinSize)
}

func TestLoad_MalformedNumber(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BLUR_SIGMA", "strong")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "BLUR_SIGMA")
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"even kernel":       func(c *Config) { c.BlurKernelSize = 98 },
		"zero divisor":      func(c *Config) { c.PixelBlockDivisor = 0 },
		"scale factor":      func(c *Config) { c.DetectorScaleFactor = 1.0 },
		"negative min size": func(c *Config) { c.DetectorMinSize = -1 },
		"capture backend":   func(c *Config) { c.CaptureBackend = "gstreamer" },
		"detector backend":  func(c *Config) { c.DetectorBackend = "dnn" },
		"censor backend":    func(c *Config) { c.CensorBackend = "gpu" },
		"mode":              func(c *Config) { c.CensorMode = "mosaic" },
		"screenshot store":  func(c *Config) { c.ScreenshotStore = "s3" },
		"poll":              func(c *Config) { c.KeyPollTimeout = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}

	require.NoError(t, Default().Validate())
}
