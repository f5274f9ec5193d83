// internal/defs/level.go
package defs

import (
	"errors"
	"fmt"
)

// Level is the immutable input of a session: the enemy path, the tower
// spots and the wave list. Coordinates are in map space until Scaled.
type Level struct {
	Name       string           `yaml:"name"`
	MapWidth   float64          `yaml:"map_width"`
	MapHeight  float64          `yaml:"map_height"`
	Path       []Point          `yaml:"path"`
	TowerSpots []Point          `yaml:"tower_spots"`
	Waves      []WaveDefinition `yaml:"waves"`
}

// Scaled returns a copy of the level with path and spots mapped onto a
// width x height screen. Levels without map dimensions are returned as is.
func (l Level) Scaled(width, height float64) Level {
	if l.MapWidth <= 0 || l.MapHeight <= 0 {
		return l
	}
	sx := width / l.MapWidth
	sy := height / l.MapHeight

	out := l
	out.Path = make([]Point, len(l.Path))
	for i, p := range l.Path {
		out.Path[i] = Point{X: p.X * sx, Y: p.Y * sy}
	}
	out.TowerSpots = make([]Point, len(l.TowerSpots))
	for i, p := range l.TowerSpots {
		out.TowerSpots[i] = Point{X: p.X * sx, Y: p.Y * sy}
	}
	out.MapWidth = width
	out.MapHeight = height
	return out
}

// Validate checks the invariants the simulation relies on.
// An empty path is allowed: spawns are then skipped.
func (l Level) Validate() error {
	var errs []error
	for wi, w := range l.Waves {
		for gi, g := range w.Groups {
			if g.Count < 0 {
				errs = append(errs, fmt.Errorf("wave %d group %d: negative count", wi+1, gi+1))
			}
			if g.SpawnIntervalMs < 0 {
				errs = append(errs, fmt.Errorf("wave %d group %d: negative spawn interval", wi+1, gi+1))
			}
			if g.HPMultiplier < 0 {
				errs = append(errs, fmt.Errorf("wave %d group %d: negative hp multiplier", wi+1, gi+1))
			}
		}
	}
	return errors.Join(errs...)
}

// Level1 is the built-in level shipped with the game.
func Level1() Level {
	wave := func(groups ...EnemyGroup) WaveDefinition { return WaveDefinition{Groups: groups} }
	group := func(t EnemyType, count int, intervalMs, hp float64) EnemyGroup {
		return EnemyGroup{EnemyType: t, Count: count, SpawnIntervalMs: intervalMs, HPMultiplier: hp}
	}
	return Level{
		Name:      "level1",
		MapWidth:  3530,
		MapHeight: 2365,
		Path: []Point{
			{X: 420, Y: 0},
			{X: 800, Y: 860},
			{X: 1300, Y: 1550},
			{X: 1500, Y: 1750},
			{X: 1950, Y: 1920},
			{X: 3530, Y: 1360},
		},
		TowerSpots: []Point{
			{X: 1020, Y: 660},
			{X: 620, Y: 1280},
			{X: 1340, Y: 1080},
			{X: 1020, Y: 1660},
			{X: 1800, Y: 1560},
			{X: 2080, Y: 2150},
			{X: 3250, Y: 1150},
		},
		Waves: []WaveDefinition{
			wave(group(EnemyDrone, 5, 800, 1.0)),
			wave(group(EnemyDrone, 3, 700, 1.1), group(EnemyLeafBlower, 2, 1200, 1.1)),
			wave(group(EnemyLeafBlower, 4, 1000, 1.2), group(EnemyDrone, 3, 700, 1.2)),
			wave(group(EnemyTrenchDigger, 4, 900, 1.3), group(EnemyDrone, 4, 600, 1.3)),
			wave(group(EnemyTrenchDigger, 5, 800, 1.4), group(EnemyLeafBlower, 4, 1200, 1.4)),
			wave(group(EnemyTrenchWalker, 3, 1200, 1.5), group(EnemyDrone, 4, 600, 1.5)),
			wave(group(EnemyTrenchWalker, 4, 1200, 1.6), group(EnemyLeafBlower, 3, 900, 1.6)),
			wave(group(EnemyDrone, 6, 600, 1.7), group(EnemyLeafBlower, 4, 900, 1.7), group(EnemyTrenchDigger, 2, 800, 1.7)),
			wave(group(EnemyTrenchDigger, 5, 700, 1.8), group(EnemyTrenchWalker, 3, 1300, 1.8)),
			wave(group(EnemyTrenchWalker, 6, 1000, 1.9), group(EnemyLeafBlower, 5, 1000, 1.9)),
		},
	}
}
