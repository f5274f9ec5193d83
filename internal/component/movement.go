// component/movement.go
package component

import "go-tower-sim/internal/defs"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// PositionOf переводит точку уровня в позицию
func PositionOf(p defs.Point) Position {
	return Position{X: p.X, Y: p.Y}
}
