// internal/event/types.go
package event

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

const (
	WaveStarted   EventType = "WaveStarted"   // Волна началась, Data: WaveData
	WaveEnded     EventType = "WaveEnded"     // Волна закончилась, Data: WaveData
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен, Data: EnemyData
	EnemyEscaped  EventType = "EnemyEscaped"  // Враг дошёл до конца пути, Data: EnemyData
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена, Data: TowerData
	TowerUpgraded EventType = "TowerUpgraded" // Башня улучшена, Data: TowerData
	GameOver      EventType = "GameOver"      // Жизни закончились
)

// WaveData — номер волны (с нуля) и их общее число
type WaveData struct {
	Index int
	Total int
}

// EnemyData описывает убитого или сбежавшего врага
type EnemyData struct {
	ID   types.EntityID
	Type defs.EnemyType
	Gold int
}

// TowerData описывает построенную или улучшенную башню
type TowerData struct {
	ID    types.EntityID
	Type  defs.TowerType
	Level int
	Spot  int
	Cost  int
}
