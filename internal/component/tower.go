// component/tower.go
package component

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

type Tower struct {
	ID           types.EntityID
	Type         defs.TowerType
	Level        int // 1..MaxLevel
	MaxLevel     int
	Damage       int     // Урон текущего уровня
	Range        float64 // Радиус действия в пикселях
	SplashRadius float64 // 0 — без урона по площади
	FireRate     float64 // Секунд между выстрелами
	FireCooldown float64 // Оставшееся время до следующего выстрела
	UpgradeCost  int     // Стоимость следующего уровня, 0 на максимуме
	Position     Position
	Spot         int // Индекс места, на котором стоит башня
}

// TowerSpot — место под башню. Занятое место больше не освобождается.
type TowerSpot struct {
	Position Position
	Occupied bool
}
