// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	DefaultEnemy EnemyType         `yaml:"default_enemy"`
	Towers       []TowerDefinition `yaml:"towers"`
	Enemies      []EnemyDefinition `yaml:"enemies"`
}

// LoadLevel reads a level from a YAML file.
func LoadLevel(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read level file: %w", err)
	}
	return ParseLevel(data)
}

// ParseLevel decodes and validates YAML level data.
func ParseLevel(data []byte) (Level, error) {
	var level Level
	if err := yaml.Unmarshal(data, &level); err != nil {
		return Level{}, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if err := level.Validate(); err != nil {
		return Level{}, fmt.Errorf("invalid level %q: %w", level.Name, err)
	}
	return level, nil
}

// LoadCatalog reads tower and enemy definitions from a YAML file.
// Sections left empty fall back to the built-in tables.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if len(f.Towers) == 0 {
		f.Towers = defaultTowers()
	}
	if len(f.Enemies) == 0 {
		f.Enemies = defaultEnemies()
		if f.DefaultEnemy == "" {
			f.DefaultEnemy = EnemyDrone
		}
	}

	c, err := NewCatalog(f.Towers, f.Enemies, f.DefaultEnemy)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}
