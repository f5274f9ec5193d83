// internal/system/combat.go
package system

import (
	"fmt"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/utils"
)

// CombatSystem управляет башнями: перезарядка, выбор цели, выстрел,
// создание и улучшение.
type CombatSystem struct {
	state           *entity.State
	catalog         *defs.Catalog
	projectileSpeed float64
}

func NewCombatSystem(state *entity.State, catalog *defs.Catalog, projectileSpeed float64) *CombatSystem {
	return &CombatSystem{
		state:           state,
		catalog:         catalog,
		projectileSpeed: projectileSpeed,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, tower := range s.state.Towers {
		tower.FireCooldown -= deltaTime
		if tower.FireCooldown > 0 {
			continue
		}
		target := s.findFirstEnemyInRange(tower)
		if target == nil {
			// Перезарядку не сбрасываем: башня выстрелит, как только цель появится
			continue
		}
		s.createProjectile(tower, target)
		// FireRate хранит секунды между выстрелами, а не выстрелы в секунду
		tower.FireCooldown = tower.FireRate
	}
}

// findFirstEnemyInRange возвращает первого по порядку спавна врага в радиусе башни
func (s *CombatSystem) findFirstEnemyInRange(tower *component.Tower) *component.Enemy {
	for _, enemy := range s.state.Enemies {
		if !enemy.Alive {
			continue
		}
		if utils.WithinRadius(tower.Position.X, tower.Position.Y, enemy.Position.X, enemy.Position.Y, tower.Range) {
			return enemy
		}
	}
	return nil
}

func (s *CombatSystem) createProjectile(tower *component.Tower, target *component.Enemy) *component.Projectile {
	proj := &component.Projectile{
		ID:           s.state.NewEntity(),
		Position:     tower.Position,
		Target:       target.Position,
		TargetID:     target.ID,
		Speed:        s.projectileSpeed,
		Damage:       float64(tower.Damage),
		SplashRadius: tower.SplashRadius,
	}
	s.state.Projectiles = append(s.state.Projectiles, proj)
	return proj
}

// CreateTower строит башню первого уровня. Стоимость и занятость места
// проверяет вызывающий.
func (s *CombatSystem) CreateTower(towerType defs.TowerType, pos component.Position, spot int) (*component.Tower, error) {
	def, ok := s.catalog.Tower(towerType)
	if !ok {
		return nil, fmt.Errorf("tower %q: %w", towerType, ErrUnknownType)
	}
	first, _ := def.LevelStats(1)
	tower := &component.Tower{
		ID:           s.state.NewEntity(),
		Type:         def.ID,
		Level:        1,
		MaxLevel:     def.MaxLevel(),
		Damage:       first.Damage,
		Range:        def.Range,
		SplashRadius: def.SplashRadius,
		FireRate:     def.FireRate,
		FireCooldown: 0,
		UpgradeCost:  def.NextUpgradeCost(1),
		Position:     pos,
		Spot:         spot,
	}
	s.state.AddTower(tower)
	return tower, nil
}

// Upgrade поднимает уровень башни, списывая золото.
// Возвращает списанную сумму.
func (s *CombatSystem) Upgrade(tower *component.Tower) (int, error) {
	def, ok := s.catalog.Tower(tower.Type)
	if !ok {
		return 0, fmt.Errorf("tower %q: %w", tower.Type, ErrUnknownType)
	}
	if tower.Level >= def.MaxLevel() {
		return 0, ErrMaxLevel
	}
	next, _ := def.LevelStats(tower.Level + 1)
	if s.state.Gold < next.UpgradeCost {
		return 0, ErrInsufficientGold
	}

	s.state.Gold -= next.UpgradeCost
	tower.Level++
	tower.Damage = next.Damage
	tower.UpgradeCost = def.NextUpgradeCost(tower.Level)
	return next.UpgradeCost, nil
}
