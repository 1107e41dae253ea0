package container

import (
	app "face-censor/internal/application"
	"face-censor/internal/domain/port"
)

type Container struct {
	CensorService     *app.CensorService
	ScreenshotService *app.ScreenshotService
}

func New(detector port.FaceDetector, censor port.Censor, annotator port.Annotator, store port.ScreenshotStore, screenshotPrefix string) *Container {
	censorService := app.NewCensorService(detector, censor, annotator)
	screenshotService := app.NewScreenshotService(store, screenshotPrefix, nil)

	return &Container{
		CensorService:     censorService,
		ScreenshotService: screenshotService,
	}
}
