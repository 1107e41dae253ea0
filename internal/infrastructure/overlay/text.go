package overlay

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"

	"face-censor/internal/domain/port"
)

// TextOverlay рисует одну строку текста поверх кадра.
type TextOverlay struct {
	Origin image.Point // базовая линия первой буквы
	Color  color.Color
	Face   font.Face
}

// NewTextOverlay создаёт оверлей: зелёный текст в точке (10, 30).
func NewTextOverlay() *TextOverlay {
	return &TextOverlay{
		Origin: image.Pt(10, 30),
		Color:  color.RGBA{G: 255, A: 255},
		Face:   inconsolata.Bold8x16,
	}
}

// Annotate пишет text прямо в кадр.
func (o *TextOverlay) Annotate(frame *image.RGBA, text string) {
	dc := gg.NewContextForRGBA(frame)
	dc.SetFontFace(o.Face)
	dc.SetColor(o.Color)

	x, y := float64(o.Origin.X), float64(o.Origin.Y)
	// Второй проход со сдвигом на пиксель даёт толщину 2.
	dc.DrawString(text, x, y)
	dc.DrawString(text, x+1, y)
}

var _ port.Annotator = (*TextOverlay)(nil)
