// internal/system/projectile.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	state *entity.State
}

func NewProjectileSystem(state *entity.State) *ProjectileSystem {
	return &ProjectileSystem{state: state}
}

// Update двигает снаряды, наносит урон долетевшим и удаляет их в конце прохода.
func (s *ProjectileSystem) Update(deltaTime float64) {
	hits := 0
	for _, proj := range s.state.Projectiles {
		moveProjectile(proj, deltaTime)
		if proj.Hit {
			s.hitTarget(proj)
			hits++
		}
	}
	if hits > 0 {
		s.state.PurgeProjectiles()
	}
}

func moveProjectile(proj *component.Projectile, deltaTime float64) {
	step := proj.Speed * deltaTime
	dx := proj.Target.X - proj.Position.X
	dy := proj.Target.Y - proj.Position.Y
	dist := utils.Distance(proj.Position.X, proj.Position.Y, proj.Target.X, proj.Target.Y)
	if dist == 0 || dist <= step {
		proj.Position = proj.Target
		proj.Hit = true
		return
	}
	proj.Position.X += (dx / dist) * step
	proj.Position.Y += (dy / dist) * step
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile) {
	if proj.SplashRadius > 0 {
		for _, enemy := range s.state.Enemies {
			if !utils.WithinRadius(proj.Target.X, proj.Target.Y, enemy.Position.X, enemy.Position.Y, proj.SplashRadius) {
				continue
			}
			if enemy.ID == proj.TargetID {
				ApplyDamage(enemy, proj.Damage)
			} else {
				ApplyDamage(enemy, proj.Damage/2)
			}
		}
		return
	}

	// Цель могла исчезнуть, пока снаряд летел
	if target, ok := s.state.Enemy(proj.TargetID); ok {
		ApplyDamage(target, proj.Damage)
	}
}
