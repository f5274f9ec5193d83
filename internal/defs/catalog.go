// internal/defs/catalog.go
package defs

import "fmt"

// Catalog is the static type table resolved once at startup.
// Towers keep their declaration order so the UI can list them.
type Catalog struct {
	towers       []TowerDefinition
	enemies      []EnemyDefinition
	towerIndex   map[TowerType]int
	enemyIndex   map[EnemyType]int
	defaultEnemy EnemyType
}

// NewCatalog validates and indexes the given definitions.
// defaultEnemy is what unknown enemy types fall back to at spawn time.
func NewCatalog(towers []TowerDefinition, enemies []EnemyDefinition, defaultEnemy EnemyType) (*Catalog, error) {
	c := &Catalog{
		towers:       towers,
		enemies:      enemies,
		towerIndex:   make(map[TowerType]int, len(towers)),
		enemyIndex:   make(map[EnemyType]int, len(enemies)),
		defaultEnemy: defaultEnemy,
	}
	for i, t := range towers {
		if _, dup := c.towerIndex[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tower type %q", t.ID)
		}
		if len(t.Levels) == 0 {
			return nil, fmt.Errorf("tower type %q has no levels", t.ID)
		}
		if t.FireRate <= 0 {
			return nil, fmt.Errorf("tower type %q: fire rate must be positive", t.ID)
		}
		c.towerIndex[t.ID] = i
	}
	for i, e := range enemies {
		if _, dup := c.enemyIndex[e.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy type %q", e.ID)
		}
		c.enemyIndex[e.ID] = i
	}
	if len(enemies) > 0 {
		if c.defaultEnemy == "" {
			c.defaultEnemy = enemies[0].ID
		}
		if _, ok := c.enemyIndex[c.defaultEnemy]; !ok {
			return nil, fmt.Errorf("default enemy type %q is not defined", c.defaultEnemy)
		}
	}
	return c, nil
}

// DefaultCatalog returns the built-in tower and enemy tables.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultTowers(), defaultEnemies(), EnemyDrone)
	if err != nil {
		panic(err) // built-in tables are static
	}
	return c
}

// Tower looks up a tower definition by type.
func (c *Catalog) Tower(id TowerType) (TowerDefinition, bool) {
	i, ok := c.towerIndex[id]
	if !ok {
		return TowerDefinition{}, false
	}
	return c.towers[i], true
}

// Towers returns all tower definitions in declaration order.
func (c *Catalog) Towers() []TowerDefinition {
	out := make([]TowerDefinition, len(c.towers))
	copy(out, c.towers)
	return out
}

// Enemy looks up an enemy definition by type.
func (c *Catalog) Enemy(id EnemyType) (EnemyDefinition, bool) {
	i, ok := c.enemyIndex[id]
	if !ok {
		return EnemyDefinition{}, false
	}
	return c.enemies[i], true
}

// EnemyOrDefault resolves id, falling back to the default enemy type.
// The second result reports whether id itself was found.
func (c *Catalog) EnemyOrDefault(id EnemyType) (EnemyDefinition, bool) {
	if def, ok := c.Enemy(id); ok {
		return def, true
	}
	def, _ := c.Enemy(c.defaultEnemy)
	return def, false
}

// DefaultEnemy is the fallback enemy type.
func (c *Catalog) DefaultEnemy() EnemyType {
	return c.defaultEnemy
}
