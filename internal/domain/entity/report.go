package entity

import "fmt"

// FrameReport итог обработки одного кадра.
type FrameReport struct {
	Faces []FaceRect // найденные и обрезанные по кадру лица
	Mode  Mode       // режим, которым лица закрыты
}

// Status возвращает строку статуса, которая выводится поверх кадра.
func (r *FrameReport) Status() string {
	return fmt.Sprintf("Faces: %d | Mode: %s", len(r.Faces), r.Mode.Label())
}
