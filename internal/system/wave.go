// internal/system/wave.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"

	"go.uber.org/zap"
)

// SpawnFunc создаёт одного врага указанного типа
type SpawnFunc func(enemyType defs.EnemyType, hpMultiplier float64)

// WaveSystem выпускает группы врагов по таймерам и переключает волны.
type WaveSystem struct {
	waves           []defs.WaveDefinition
	spawn           SpawnFunc
	liveEnemies     func() int
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger

	waveIndex         int
	waveActive        bool
	timeUntilNextWave float64
	runtime           component.WaveRuntime
}

func NewWaveSystem(waves []defs.WaveDefinition, spawn SpawnFunc, liveEnemies func() int, eventDispatcher *event.Dispatcher, logger *zap.Logger) *WaveSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WaveSystem{
		waves:           waves,
		spawn:           spawn,
		liveEnemies:     liveEnemies,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	if s.waveIndex >= len(s.waves) {
		return
	}

	if !s.waveActive {
		s.timeUntilNextWave -= deltaTime
		if s.timeUntilNextWave <= 0 {
			s.startWave()
		}
	}
	if !s.waveActive {
		return
	}

	wave := s.waves[s.waveIndex]
	allSpawned := true
	for i, group := range wave.Groups {
		rt := &s.runtime.Groups[i]
		if rt.Spawned >= group.Count {
			continue
		}
		rt.TimerAcc += deltaTime
		if rt.TimerAcc >= rt.IntervalSec {
			// Вычитаем, а не обнуляем: перелёт переносится на следующий кадр
			rt.TimerAcc -= rt.IntervalSec
			s.spawn(group.EnemyType, group.HPMultiplier)
			rt.Spawned++
		}
		if rt.Spawned < group.Count {
			allSpawned = false
		}
	}

	if allSpawned && s.liveEnemies() == 0 {
		s.finishWave()
	}
}

// SendEarly запускает следующую волну сразу, минуя таймер.
// Ничего не делает, если волна уже идёт или волн не осталось.
func (s *WaveSystem) SendEarly() {
	if s.waveActive || s.waveIndex >= len(s.waves) {
		return
	}
	s.startWave()
}

func (s *WaveSystem) startWave() {
	s.waveActive = true
	groups := s.waves[s.waveIndex].Groups
	s.runtime.Groups = make([]component.GroupRuntime, len(groups))
	for i, g := range groups {
		s.runtime.Groups[i] = component.GroupRuntime{IntervalSec: g.SpawnIntervalSeconds()}
	}
	s.logger.Info("wave started", zap.Int("wave", s.waveIndex+1), zap.Int("total", len(s.waves)))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Index: s.waveIndex, Total: len(s.waves)},
	})
}

func (s *WaveSystem) finishWave() {
	finished := s.waveIndex
	s.waveActive = false
	s.waveIndex++
	s.timeUntilNextWave = 0
	s.logger.Info("wave ended", zap.Int("wave", finished+1), zap.Int("total", len(s.waves)))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WaveData{Index: finished, Total: len(s.waves)},
	})
}

// WaveIndex — индекс текущей (или следующей) волны, с нуля
func (s *WaveSystem) WaveIndex() int {
	return s.waveIndex
}

// TotalWaves — общее число волн уровня
func (s *WaveSystem) TotalWaves() int {
	return len(s.waves)
}

// Active — идёт ли волна
func (s *WaveSystem) Active() bool {
	return s.waveActive
}

// Ready — следующую волну можно запустить
func (s *WaveSystem) Ready() bool {
	return !s.waveActive && s.waveIndex < len(s.waves)
}

func (s *WaveSystem) Phase() component.WavePhase {
	switch {
	case s.waveActive:
		return component.WaveActive
	case s.waveIndex >= len(s.waves):
		return component.WaveFinished
	default:
		return component.WavePending
	}
}

// Runtime возвращает копию счётчиков активной волны
func (s *WaveSystem) Runtime() component.WaveRuntime {
	groups := make([]component.GroupRuntime, len(s.runtime.Groups))
	copy(groups, s.runtime.Groups)
	return component.WaveRuntime{Groups: groups}
}
