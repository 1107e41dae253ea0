package entity

import "image"

// FaceRect представляет область с обнаруженным лицом
type FaceRect struct {
	X      int // координата X левого верхнего угла
	Y      int // координата Y левого верхнего угла
	Width  int // ширина области в пикселях
	Height int // высота области в пикселях
}

// FaceRectFromImage строит FaceRect из image.Rectangle.
func FaceRectFromImage(r image.Rectangle) FaceRect {
	r = r.Canon()
	return FaceRect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Rect возвращает область в виде image.Rectangle
func (f FaceRect) Rect() image.Rectangle {
	return image.Rect(f.X, f.Y, f.X+f.Width, f.Y+f.Height)
}

// Empty сообщает, что у области нет площади.
func (f FaceRect) Empty() bool {
	return f.Width <= 0 || f.Height <= 0
}

// Clamp обрезает область по границам кадра. Результат может быть пустым.
func (f FaceRect) Clamp(bounds image.Rectangle) FaceRect {
	if f.Empty() {
		return FaceRect{}
	}
	r := f.Rect().Intersect(bounds)
	if r.Empty() {
		return FaceRect{}
	}
	return FaceRectFromImage(r)
}

// PixelGrid возвращает размер сетки пикселизации для области w x h.
// Каждая сторона не меньше 1, поэтому мелкие лица превращаются в один блок.
func PixelGrid(width, height, divisor int) (cols, rows int) {
	if divisor < 1 {
		divisor = 1
	}
	cols = max(1, width/divisor)
	rows = max(1, height/divisor)
	return cols, rows
}
