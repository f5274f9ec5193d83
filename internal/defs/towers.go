// internal/defs/towers.go
package defs

// TowerLevel describes one upgrade step of a tower.
// UpgradeCost is what it costs to reach this level from the previous one.
type TowerLevel struct {
	Level       int `yaml:"level"`
	Damage      int `yaml:"damage"`
	UpgradeCost int `yaml:"upgrade_cost"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID           TowerType    `yaml:"id"`
	BasePrice    int          `yaml:"base_price"`
	Range        float64      `yaml:"range"`
	SplashRadius float64      `yaml:"splash_radius"` // 0 means single target
	FireRate     float64      `yaml:"fire_rate"`     // seconds between shots
	Levels       []TowerLevel `yaml:"levels"`
}

// MaxLevel is the highest level the tower can be upgraded to.
func (d TowerDefinition) MaxLevel() int {
	return len(d.Levels)
}

// LevelStats returns the stats of the given 1-based level.
func (d TowerDefinition) LevelStats(level int) (TowerLevel, bool) {
	if level < 1 || level > len(d.Levels) {
		return TowerLevel{}, false
	}
	return d.Levels[level-1], true
}

// NextUpgradeCost is the price of going from level to level+1, or 0 at max level.
func (d TowerDefinition) NextUpgradeCost(level int) int {
	next, ok := d.LevelStats(level + 1)
	if !ok {
		return 0
	}
	return next.UpgradeCost
}

func defaultTowers() []TowerDefinition {
	levels := func(damage ...int) []TowerLevel {
		costs := []int{0, 50, 100, 150}
		out := make([]TowerLevel, len(damage))
		for i, d := range damage {
			out[i] = TowerLevel{Level: i + 1, Damage: d, UpgradeCost: costs[i]}
		}
		return out
	}
	return []TowerDefinition{
		{ID: TowerPoint, BasePrice: 80, Range: 169, SplashRadius: 0, FireRate: 1.5, Levels: levels(10, 15, 20, 25)},
		{ID: TowerSplash, BasePrice: 80, Range: 104, SplashRadius: 50, FireRate: 1.5, Levels: levels(8, 12, 16, 20)},
	}
}
