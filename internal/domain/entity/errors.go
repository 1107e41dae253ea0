package entity

import "fmt"

// AssetLoadError сообщает, что модель детектора не удалось загрузить.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load asset %s", e.Path)
	}
	return fmt.Sprintf("load asset %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// CaptureError ошибка источника кадров: Op = "open" или "read".
type CaptureError struct {
	Op     string
	Device string
	Err    error
}

func (e *CaptureError) Error() string {
	msg := fmt.Sprintf("capture %s %s", e.Op, e.Device)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}
