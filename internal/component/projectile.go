// internal/component/projectile.go
package component

import "go-tower-sim/internal/types"

// Projectile представляет летящий снаряд.
// Точка прицеливания фиксируется в момент выстрела и больше не меняется.
type Projectile struct {
	ID           types.EntityID
	Position     Position
	Target       Position
	TargetID     types.EntityID // Основная цель
	Speed        float64
	Damage       float64
	SplashRadius float64
	Hit          bool
}
