// internal/defs/types.go
package defs

// EnemyType identifies an enemy definition in the catalog.
type EnemyType string

const (
	EnemyDrone        EnemyType = "drone"
	EnemyLeafBlower   EnemyType = "leaf_blower"
	EnemyTrenchDigger EnemyType = "trench_digger"
	EnemyTrenchWalker EnemyType = "trench_walker"
)

// TowerType identifies a tower definition in the catalog.
type TowerType string

const (
	TowerPoint  TowerType = "point"
	TowerSplash TowerType = "splash"
)

// Point is a position in level (or, after scaling, screen) coordinates.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}
