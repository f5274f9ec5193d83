// internal/defs/waves.go
package defs

// EnemyGroup describes a batch of identical enemies inside a wave.
type EnemyGroup struct {
	EnemyType       EnemyType `yaml:"type"`
	Count           int       `yaml:"count"`
	SpawnIntervalMs float64   `yaml:"spawn_interval"` // milliseconds between spawns
	HPMultiplier    float64   `yaml:"hp_multiplier"`
}

// SpawnIntervalSeconds converts the millisecond interval for the scheduler.
func (g EnemyGroup) SpawnIntervalSeconds() float64 {
	return g.SpawnIntervalMs / 1000.0
}

// WaveDefinition is an ordered list of groups that spawn in parallel.
// It is never mutated at runtime: counters live in component.WaveRuntime.
type WaveDefinition struct {
	Groups []EnemyGroup `yaml:"enemy_groups"`
}
