// internal/entity/ecs.go
package entity

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

// State — общее изменяемое состояние одной игровой сессии.
// Коллекции хранятся срезами: порядок вставки (порядок спавна) значим
// для выбора цели башней. Все изменения идут из одного потока.
type State struct {
	GameTime    float64
	NextID      types.EntityID
	Gold        int
	Lives       int
	MaxLives    int
	Paused      bool
	FirstStart  bool // До первого снятия с паузы
	SpeedIndex  int
	Path        []component.Position
	Spots       []component.TowerSpot
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Projectiles []*component.Projectile

	enemyIndex map[types.EntityID]*component.Enemy
	towerIndex map[types.EntityID]*component.Tower
}

// NewState создаёт состояние на старте сессии: игра на паузе, поле пустое.
func NewState(level defs.Level, gold, lives int) *State {
	s := &State{
		NextID:     1,
		Gold:       gold,
		Lives:      lives,
		MaxLives:   lives,
		Paused:     true,
		FirstStart: true,
		Path:       make([]component.Position, len(level.Path)),
		Spots:      make([]component.TowerSpot, len(level.TowerSpots)),
		enemyIndex: make(map[types.EntityID]*component.Enemy),
		towerIndex: make(map[types.EntityID]*component.Tower),
	}
	for i, p := range level.Path {
		s.Path[i] = component.PositionOf(p)
	}
	for i, p := range level.TowerSpots {
		s.Spots[i] = component.TowerSpot{Position: component.PositionOf(p)}
	}
	return s
}

func (s *State) NewEntity() types.EntityID {
	id := s.NextID
	s.NextID++
	return id
}

// AddEnemy добавляет врага в конец коллекции
func (s *State) AddEnemy(e *component.Enemy) {
	s.Enemies = append(s.Enemies, e)
	s.enemyIndex[e.ID] = e
}

// Enemy ищет врага, который ещё не удалён из коллекции
func (s *State) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := s.enemyIndex[id]
	return e, ok
}

// AddTower добавляет башню
func (s *State) AddTower(t *component.Tower) {
	s.Towers = append(s.Towers, t)
	s.towerIndex[t.ID] = t
}

// Tower ищет башню по ID
func (s *State) Tower(id types.EntityID) (*component.Tower, bool) {
	t, ok := s.towerIndex[id]
	return t, ok
}

// PurgeEnemies удаляет всех врагов с Alive == false одним проходом,
// сохраняя порядок оставшихся. Возвращает число удалённых.
func (s *State) PurgeEnemies() int {
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Alive {
			kept = append(kept, e)
			continue
		}
		delete(s.enemyIndex, e.ID)
	}
	removed := len(s.Enemies) - len(kept)
	for i := len(kept); i < len(s.Enemies); i++ {
		s.Enemies[i] = nil
	}
	s.Enemies = kept
	return removed
}

// PurgeProjectiles удаляет попавшие снаряды
func (s *State) PurgeProjectiles() {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.Hit {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.Projectiles); i++ {
		s.Projectiles[i] = nil
	}
	s.Projectiles = kept
}

// GameOver — жизни закончились
func (s *State) GameOver() bool {
	return s.Lives <= 0
}
