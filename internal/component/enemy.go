// internal/component/enemy.go
package component

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID            types.EntityID
	Type          defs.EnemyType
	Position      Position
	HP            float64 // Может уйти в минус до удаления
	MaxHP         float64
	Speed         float64 // Пикселей в секунду
	Gold          int     // Награда за убийство
	WaypointIndex int     // Индекс следующей точки пути, только растёт
	Alive         bool    // false — ожидает удаления из коллекции
}

// Dead — здоровье кончилось
func (e *Enemy) Dead() bool {
	return e.HP <= 0
}

// Escaped — враг прошёл весь путь
func (e *Enemy) Escaped(pathLen int) bool {
	return e.WaypointIndex >= pathLen
}
