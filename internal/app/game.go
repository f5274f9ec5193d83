// internal/app/game.go
package app

import (
	"fmt"
	"sync"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/system"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"

	"go.uber.org/zap"
)

// Options задают параметры сессии. Нулевые HPFactor, ProjectileSpeed и
// StartingLives заменяются значениями по умолчанию, нулевой SpeedJitter
// означает точные скорости.
type Options struct {
	StartingGold    int
	StartingLives   int
	HPFactor        float64
	SpeedJitter     float64
	ProjectileSpeed float64
	Seed            int64 // 0 = от текущего времени
	Logger          *zap.Logger
}

// DefaultOptions — параметры базовой игры
func DefaultOptions() Options {
	return Options{
		StartingGold:    config.StartingGold,
		StartingLives:   config.StartingLives,
		HPFactor:        config.EnemyHPFactor,
		SpeedJitter:     config.EnemySpeedJitter,
		ProjectileSpeed: config.ProjectileSpeed,
	}
}

// Game владеет состоянием сессии и системами. Все публичные методы
// берут один мьютекс, так что управляющие операции никогда не
// пересекаются с тиком.
type Game struct {
	mu sync.Mutex

	level   defs.Level
	catalog *defs.Catalog
	opts    Options
	logger  *zap.Logger
	rng     *utils.PRNGService

	// EventDispatcher рассылает события симуляции. Подписываться нужно до
	// первого Tick; слушатели вызываются под мьютексом и не должны
	// обращаться к Game.
	EventDispatcher *event.Dispatcher

	state            *entity.State
	movementSystem   *system.MovementSystem
	waveSystem       *system.WaveSystem
	combatSystem     *system.CombatSystem
	projectileSystem *system.ProjectileSystem
}

// NewGame создаёт сессию на уровне level. catalog == nil означает
// встроенные таблицы башен и врагов.
func NewGame(level defs.Level, catalog *defs.Catalog, opts Options) (*Game, error) {
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("level %q: %w", level.Name, err)
	}
	if catalog == nil {
		catalog = defs.DefaultCatalog()
	}
	defaults := DefaultOptions()
	if opts.StartingLives <= 0 {
		opts.StartingLives = defaults.StartingLives
	}
	if opts.HPFactor <= 0 {
		opts.HPFactor = defaults.HPFactor
	}
	if opts.ProjectileSpeed <= 0 {
		opts.ProjectileSpeed = defaults.ProjectileSpeed
	}
	if opts.StartingGold < 0 {
		opts.StartingGold = 0
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Game{
		level:           level,
		catalog:         catalog,
		opts:            opts,
		logger:          logger,
		rng:             utils.NewPRNGService(opts.Seed),
		EventDispatcher: event.NewDispatcher(),
	}
	g.reset(opts.StartingGold)

	listener := &GameEventListener{logger: logger}
	g.EventDispatcher.SubscribeAll(listener,
		event.EnemyKilled,
		event.EnemyEscaped,
		event.TowerPlaced,
		event.TowerUpgraded,
		event.GameOver,
	)
	return g, nil
}

// reset пересобирает состояние и все системы с нуля
func (g *Game) reset(gold int) {
	state := entity.NewState(g.level, gold, g.opts.StartingLives)
	movement := system.NewMovementSystem(state, g.catalog, g.rng, system.SpawnParams{
		HPFactor:    g.opts.HPFactor,
		SpeedJitter: g.opts.SpeedJitter,
	}, g.logger)
	spawn := func(enemyType defs.EnemyType, hpMultiplier float64) {
		movement.Spawn(enemyType, hpMultiplier)
	}
	liveEnemies := func() int { return len(state.Enemies) }

	g.state = state
	g.movementSystem = movement
	g.waveSystem = system.NewWaveSystem(g.level.Waves, spawn, liveEnemies, g.EventDispatcher, g.logger)
	g.combatSystem = system.NewCombatSystem(state, g.catalog, g.opts.ProjectileSpeed)
	g.projectileSystem = system.NewProjectileSystem(state)
}

// Tick продвигает симуляцию на один кадр. На паузе ничего не меняется.
func (g *Game) Tick(deltaSeconds float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Paused || deltaSeconds <= 0 {
		return
	}
	dt := deltaSeconds * g.speedMultiplier()
	g.state.GameTime += dt

	g.waveSystem.Update(dt)
	g.movementSystem.Update(dt)
	g.cleanupDestroyedEntities()
	if g.state.GameOver() {
		return
	}
	g.combatSystem.Update(dt)
	g.projectileSystem.Update(dt)
	g.cleanupDestroyedEntities()
}

// cleanupDestroyedEntities начисляет золото за убитых, снимает жизни за
// сбежавших и удаляет их одним проходом после всех проверок кадра.
func (g *Game) cleanupDestroyedEntities() {
	wasOver := g.state.GameOver()
	pathLen := len(g.state.Path)
	removed := 0

	for _, enemy := range g.state.Enemies {
		if !enemy.Alive {
			continue
		}
		data := event.EnemyData{ID: enemy.ID, Type: enemy.Type, Gold: enemy.Gold}
		switch {
		case enemy.Dead():
			g.state.Gold += enemy.Gold
			enemy.Alive = false
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
		case enemy.Escaped(pathLen):
			if g.state.Lives > 0 {
				g.state.Lives--
			}
			enemy.Alive = false
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: data})
		default:
			continue
		}
		removed++
	}
	if removed > 0 {
		g.state.PurgeEnemies()
	}

	if !wasOver && g.state.GameOver() {
		g.state.Paused = true
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// SpawnEnemy создаёт врага в начале пути вне расписания волн.
func (g *Game) SpawnEnemy(enemyType defs.EnemyType, hpMultiplier float64) (types.EntityID, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	enemy, ok := g.movementSystem.Spawn(enemyType, hpMultiplier)
	if !ok {
		return 0, false
	}
	return enemy.ID, true
}

// ToggleSpeed переключает множитель скорости по кругу и возвращает новый
func (g *Game) ToggleSpeed() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state.SpeedIndex = (g.state.SpeedIndex + 1) % len(config.SpeedOptions)
	return g.speedMultiplier()
}

// TogglePause снимает игру с начальной паузы при первом вызове, дальше
// переключает паузу. После конца игры пауза не снимается.
// Возвращает новое состояние паузы.
func (g *Game) TogglePause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case g.state.GameOver():
		g.state.Paused = true
	case g.state.FirstStart:
		g.state.FirstStart = false
		g.state.Paused = false
	default:
		g.state.Paused = !g.state.Paused
	}
	return g.state.Paused
}

// SendWaveEarly запускает следующую волну, если сейчас нет активной
func (g *Game) SendWaveEarly() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.waveSystem.SendEarly()
}

// Restart полностью пересоздаёт сессию с новым стартовым золотом.
// Подписчики EventDispatcher сохраняются.
func (g *Game) Restart(startingGold int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if startingGold < 0 {
		startingGold = 0
	}
	g.reset(startingGold)
	g.logger.Info("game restarted", zap.Int("gold", startingGold), zap.String("level", g.level.Name))
}

// Level возвращает уровень сессии
func (g *Game) Level() defs.Level {
	return g.level
}

func (g *Game) speedMultiplier() float64 {
	return config.SpeedOptions[g.state.SpeedIndex]
}

// GameEventListener пишет события симуляции в лог.
type GameEventListener struct {
	logger *zap.Logger
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyEscaped:
		if data, ok := e.Data.(event.EnemyData); ok {
			l.logger.Debug(string(e.Type),
				zap.Uint64("id", uint64(data.ID)),
				zap.String("type", string(data.Type)),
				zap.Int("gold", data.Gold),
			)
		}
	case event.TowerPlaced, event.TowerUpgraded:
		if data, ok := e.Data.(event.TowerData); ok {
			l.logger.Debug(string(e.Type),
				zap.Uint64("id", uint64(data.ID)),
				zap.String("type", string(data.Type)),
				zap.Int("level", data.Level),
				zap.Int("spot", data.Spot),
				zap.Int("cost", data.Cost),
			)
		}
	case event.GameOver:
		l.logger.Info("game over")
	}
}
