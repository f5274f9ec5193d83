// internal/system/movement.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/utils"

	"go.uber.org/zap"
)

// SpawnParams — глобальные модификаторы для новых врагов
type SpawnParams struct {
	HPFactor    float64 // Общий множитель здоровья (0.8 в базовой игре)
	SpeedJitter float64 // Разброс скорости, ±доля от базовой
}

// MovementSystem двигает врагов по пути и создаёт новых врагов на его начале.
type MovementSystem struct {
	state   *entity.State
	catalog *defs.Catalog
	rng     *utils.PRNGService
	params  SpawnParams
	logger  *zap.Logger
}

func NewMovementSystem(state *entity.State, catalog *defs.Catalog, rng *utils.PRNGService, params SpawnParams, logger *zap.Logger) *MovementSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MovementSystem{state: state, catalog: catalog, rng: rng, params: params, logger: logger}
}

// Update продвигает каждого живого врага на dt
func (s *MovementSystem) Update(deltaTime float64) {
	for _, enemy := range s.state.Enemies {
		if !enemy.Alive {
			continue
		}
		Advance(enemy, s.state.Path, deltaTime)
	}
}

// Advance двигает врага к path[WaypointIndex] на Speed*dt. Если шаг не меньше
// оставшегося расстояния, враг встаёт ровно в точку и индекс растёт на один.
// Остаток шага отбрасывается: не больше одной точки пути за вызов.
func Advance(enemy *component.Enemy, path []component.Position, deltaTime float64) {
	if enemy.WaypointIndex >= len(path) {
		return
	}
	target := path[enemy.WaypointIndex]

	dx := target.X - enemy.Position.X
	dy := target.Y - enemy.Position.Y
	dist := utils.Distance(enemy.Position.X, enemy.Position.Y, target.X, target.Y)
	moveDistance := enemy.Speed * deltaTime

	if dist == 0 || dist <= moveDistance {
		enemy.Position = target
		enemy.WaypointIndex++
		return
	}
	enemy.Position.X += (dx / dist) * moveDistance
	enemy.Position.Y += (dy / dist) * moveDistance
}

// Spawn создаёт врага в первой точке пути. Неизвестный тип заменяется
// типом по умолчанию из каталога.
func (s *MovementSystem) Spawn(enemyType defs.EnemyType, hpMultiplier float64) (*component.Enemy, bool) {
	if len(s.state.Path) == 0 {
		s.logger.Warn("no path defined, cannot spawn enemy", zap.String("type", string(enemyType)))
		return nil, false
	}

	def, found := s.catalog.EnemyOrDefault(enemyType)
	if !found {
		s.logger.Warn("unknown enemy type, using default",
			zap.String("type", string(enemyType)),
			zap.String("default", string(def.ID)),
		)
	}
	if def.ID == "" {
		s.logger.Warn("catalog has no enemies, spawn skipped", zap.String("type", string(enemyType)))
		return nil, false
	}

	hp := def.BaseHP * s.params.HPFactor * hpMultiplier
	enemy := &component.Enemy{
		ID:            s.state.NewEntity(),
		Type:          def.ID,
		Position:      s.state.Path[0],
		HP:            hp,
		MaxHP:         hp,
		Speed:         def.BaseSpeed * s.rng.Jitter(s.params.SpeedJitter),
		Gold:          def.Gold,
		WaypointIndex: 1,
		Alive:         true,
	}
	s.state.AddEnemy(enemy)
	return enemy, true
}
