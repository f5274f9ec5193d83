// internal/ui/hittest.go
package ui

import (
	game "go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
)

// TowerRadius — радиус отрисовки башни, растёт с уровнем
func TowerRadius(level int) float64 {
	return config.TowerBaseRadius + config.TowerLevelRadius*float64(level-1)
}

// TowerAt ищет башню под курсором
func TowerAt(snap game.Snapshot, x, y float64) (types.EntityID, bool) {
	for _, t := range snap.Towers {
		if utils.WithinRadius(t.Position.X, t.Position.Y, x, y, TowerRadius(t.Level)) {
			return t.ID, true
		}
	}
	return 0, false
}

// FreeSpotAt ищет свободное место под курсором
func FreeSpotAt(snap game.Snapshot, x, y float64) (int, bool) {
	for _, s := range snap.Spots {
		if s.Occupied {
			continue
		}
		if utils.WithinRadius(s.Position.X, s.Position.Y, x, y, config.SpotRadius) {
			return s.ID, true
		}
	}
	return 0, false
}
