// internal/app/snapshot.go
package app

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

type EnemyView struct {
	ID       types.EntityID
	Type     defs.EnemyType
	Position component.Position
	HP       float64
	MaxHP    float64
	Speed    float64
	Gold     int
}

type TowerView struct {
	ID           types.EntityID
	Type         defs.TowerType
	Level        int
	MaxLevel     int
	Position     component.Position
	Range        float64
	SplashRadius float64
	UpgradeCost  int // 0 на максимальном уровне
	Spot         int
}

type ProjectileView struct {
	Position component.Position
}

type SpotView struct {
	ID       int
	Position component.Position
	Occupied bool
}

// Snapshot — копия состояния для отрисовки. Не связана с живым состоянием.
type Snapshot struct {
	Gold       int
	Lives      int
	MaxLives   int
	WaveIndex  int // Текущая или следующая волна, с нуля
	TotalWaves int
	WaveActive bool
	WavePhase  component.WavePhase
	WaveReady  bool // Волна не идёт и ещё остались волны
	GameOver   bool
	Paused     bool
	FirstStart bool
	Speed      float64
	GameTime   float64

	Path        []component.Position
	Spots       []SpotView
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
}

// Snapshot снимает копию текущего состояния
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.state
	snap := Snapshot{
		Gold:        s.Gold,
		Lives:       s.Lives,
		MaxLives:    s.MaxLives,
		WaveIndex:   g.waveSystem.WaveIndex(),
		TotalWaves:  g.waveSystem.TotalWaves(),
		WaveActive:  g.waveSystem.Active(),
		WavePhase:   g.waveSystem.Phase(),
		WaveReady:   g.waveSystem.Ready(),
		GameOver:    s.GameOver(),
		Paused:      s.Paused,
		FirstStart:  s.FirstStart,
		Speed:       g.speedMultiplier(),
		GameTime:    s.GameTime,
		Path:        append([]component.Position(nil), s.Path...),
		Spots:       make([]SpotView, len(s.Spots)),
		Enemies:     make([]EnemyView, 0, len(s.Enemies)),
		Towers:      make([]TowerView, 0, len(s.Towers)),
		Projectiles: make([]ProjectileView, 0, len(s.Projectiles)),
	}
	for i, spot := range s.Spots {
		snap.Spots[i] = SpotView{ID: i, Position: spot.Position, Occupied: spot.Occupied}
	}
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:       e.ID,
			Type:     e.Type,
			Position: e.Position,
			HP:       e.HP,
			MaxHP:    e.MaxHP,
			Speed:    e.Speed,
			Gold:     e.Gold,
		})
	}
	for _, t := range s.Towers {
		snap.Towers = append(snap.Towers, TowerView{
			ID:           t.ID,
			Type:         t.Type,
			Level:        t.Level,
			MaxLevel:     t.MaxLevel,
			Position:     t.Position,
			Range:        t.Range,
			SplashRadius: t.SplashRadius,
			UpgradeCost:  t.UpgradeCost,
			Spot:         t.Spot,
		})
	}
	for _, p := range s.Projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{Position: p.Position})
	}
	return snap
}
