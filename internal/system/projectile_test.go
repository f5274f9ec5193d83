package system

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
)

func newProjectileState() (*entity.State, *ProjectileSystem) {
	state := entity.NewState(defs.Level{}, 0, 20)
	return state, NewProjectileSystem(state)
}

func TestProjectileFliesTowardCapturedTarget(t *testing.T) {
	state, ps := newProjectileState()
	target := addEnemyAt(state, 100, 0)
	state.Projectiles = append(state.Projectiles, &component.Projectile{
		ID: 99, Target: component.Position{X: 100, Y: 0}, TargetID: target.ID, Speed: 50, Damage: 10,
	})

	// Цель уходит, но снаряд летит в точку, запомненную при выстреле
	target.Position = component.Position{X: 100, Y: 500}
	ps.Update(1)

	p := state.Projectiles[0]
	if p.Position != (component.Position{X: 50, Y: 0}) || p.Hit {
		t.Fatalf("unexpected projectile state: %+v", p)
	}

	ps.Update(1)
	if len(state.Projectiles) != 0 {
		t.Fatalf("hit projectile must be removed")
	}
	if target.HP != 90 {
		t.Fatalf("single-target projectile must damage its target wherever it is, hp=%v", target.HP)
	}
}

func TestProjectileZeroDistanceHitsImmediately(t *testing.T) {
	state, ps := newProjectileState()
	target := addEnemyAt(state, 5, 5)
	state.Projectiles = append(state.Projectiles, &component.Projectile{
		Position: component.Position{X: 5, Y: 5}, Target: component.Position{X: 5, Y: 5}, TargetID: target.ID, Speed: 300, Damage: 7,
	})
	ps.Update(0)
	if target.HP != 93 || len(state.Projectiles) != 0 {
		t.Fatalf("zero-distance projectile should hit at once, hp=%v left=%d", target.HP, len(state.Projectiles))
	}
}

func TestSingleTargetIgnoresRemovedTarget(t *testing.T) {
	state, ps := newProjectileState()
	target := addEnemyAt(state, 10, 0)
	bystander := addEnemyAt(state, 10, 0)
	state.Projectiles = append(state.Projectiles, &component.Projectile{
		Target: target.Position, TargetID: target.ID, Speed: 1000, Damage: 10,
	})

	target.Alive = false
	state.PurgeEnemies()
	ps.Update(1)

	if bystander.HP != 100 {
		t.Fatalf("single-target projectile must not hit other enemies")
	}
	if len(state.Projectiles) != 0 {
		t.Fatalf("projectile should still be consumed")
	}
}

func TestSplashDamageFullAndHalf(t *testing.T) {
	state, ps := newProjectileState()
	primary := addEnemyAt(state, 100, 0)
	near := addEnemyAt(state, 130, 0)
	far := addEnemyAt(state, 200, 0)
	state.Projectiles = append(state.Projectiles, &component.Projectile{
		Target: primary.Position, TargetID: primary.ID, Speed: 1000, Damage: 10, SplashRadius: 50,
	})

	ps.Update(1)

	if primary.HP != 90 {
		t.Fatalf("primary target should take full damage, hp=%v", primary.HP)
	}
	if near.HP != 95 {
		t.Fatalf("enemy in splash should take half damage, hp=%v", near.HP)
	}
	if far.HP != 100 {
		t.Fatalf("enemy outside splash should be untouched, hp=%v", far.HP)
	}
}

func TestSplashBoundary(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		wantHP float64
	}{
		{"exactly on radius", 50, 95},
		{"just outside", 50.000001, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ps := newProjectileState()
			primary := addEnemyAt(state, 0, 0)
			other := addEnemyAt(state, tt.x, 0)
			state.Projectiles = append(state.Projectiles, &component.Projectile{
				Target: primary.Position, TargetID: primary.ID, Speed: 1000, Damage: 10, SplashRadius: 50,
			})
			ps.Update(1)
			if other.HP != tt.wantHP {
				t.Fatalf("hp=%v, want %v", other.HP, tt.wantHP)
			}
		})
	}
}

func TestSplashWithoutPrimaryStillHitsArea(t *testing.T) {
	state, ps := newProjectileState()
	other := addEnemyAt(state, 10, 0)
	state.Projectiles = append(state.Projectiles, &component.Projectile{
		Target: component.Position{}, TargetID: 12345, Speed: 1000, Damage: 10, SplashRadius: 50,
	})
	ps.Update(1)
	if other.HP != 95 {
		t.Fatalf("splash should still damage nearby enemies, hp=%v", other.HP)
	}
}

func TestProjectilesRemovedAfterPass(t *testing.T) {
	state, ps := newProjectileState()
	target := addEnemyAt(state, 10, 0)
	state.Projectiles = append(state.Projectiles,
		&component.Projectile{ID: 1, Target: target.Position, TargetID: target.ID, Speed: 1000, Damage: 1},
		&component.Projectile{ID: 2, Target: component.Position{X: 5000}, TargetID: target.ID, Speed: 1, Damage: 1},
		&component.Projectile{ID: 3, Target: target.Position, TargetID: target.ID, Speed: 1000, Damage: 1},
	)
	ps.Update(1)
	if target.HP != 98 {
		t.Fatalf("both arriving projectiles should apply damage, hp=%v", target.HP)
	}
	if len(state.Projectiles) != 1 || state.Projectiles[0].ID != 2 {
		t.Fatalf("only the in-flight projectile should remain: %+v", state.Projectiles)
	}
}
