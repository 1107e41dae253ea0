package vision

import "errors"

// Чувствительность детектора по умолчанию.
const (
	DefaultScaleFactor  = 1.1
	DefaultMinNeighbors = 5
	DefaultMinSize      = 30
)

var errGoCVDisabled = errors.New("gocv build tag is not enabled")

// DetectorParams параметры чувствительности детектора лиц
type DetectorParams struct {
	ScaleFactor  float64 // шаг масштаба окна поиска
	MinNeighbors int     // сколько соседних срабатываний нужно для лица
	MinSize      int     // минимальная сторона лица в пикселях
}

// withDefaults заменяет только невозможные значения. MinNeighbors = 0 и MinSize = 0
// допустимы: OpenCV тогда не фильтрует по соседям и размеру.
func (p DetectorParams) withDefaults() DetectorParams {
	if p.ScaleFactor <= 1 {
		p.ScaleFactor = DefaultScaleFactor
	}
	if p.MinNeighbors < 0 {
		p.MinNeighbors = DefaultMinNeighbors
	}
	if p.MinSize < 0 {
		p.MinSize = DefaultMinSize
	}
	return p
}
