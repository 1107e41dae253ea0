package entity

import (
	"fmt"
	"strings"
)

// Mode режим цензуры лиц
type Mode string

const (
	ModeBlur     Mode = "blur"     // Размытие по Гауссу
	ModePixelate Mode = "pixelate" // Пикселизация
)

// ParseMode разбирает строковое имя режима.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeBlur:
		return ModeBlur, nil
	case ModePixelate:
		return ModePixelate, nil
	default:
		return "", fmt.Errorf("unknown censor mode %q", s)
	}
}

func (m Mode) String() string {
	return string(m)
}

// Label возвращает имя режима для строки статуса
func (m Mode) Label() string {
	return strings.ToUpper(string(m))
}
