// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID        EnemyType `yaml:"id"`
	BaseHP    float64   `yaml:"base_hp"`
	Gold      int       `yaml:"gold"`
	BaseSpeed float64   `yaml:"base_speed"` // pixels per second
}

func defaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{ID: EnemyDrone, BaseHP: 30, Gold: 5, BaseSpeed: 80},
		{ID: EnemyLeafBlower, BaseHP: 60, Gold: 8, BaseSpeed: 60},
		{ID: EnemyTrenchDigger, BaseHP: 100, Gold: 12, BaseSpeed: 30},
		{ID: EnemyTrenchWalker, BaseHP: 150, Gold: 15, BaseSpeed: 25},
	}
}
