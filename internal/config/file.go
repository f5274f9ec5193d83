// internal/config/file.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the runtime configuration loaded from TOML.
type Config struct {
	Game       GameConfig       `toml:"game"`
	Enemies    EnemiesConfig    `toml:"enemies"`
	Projectile ProjectileConfig `toml:"projectile"`
	Level      LevelConfig      `toml:"level"`
	Window     WindowConfig     `toml:"window"`
	Logging    LoggingConfig    `toml:"logging"`
}

type GameConfig struct {
	StartingGold  int   `toml:"starting_gold"`
	StartingLives int   `toml:"starting_lives"`
	Seed          int64 `toml:"seed"` // 0 = seed from time
}

type EnemiesConfig struct {
	HPFactor    float64 `toml:"hp_factor"`
	SpeedJitter float64 `toml:"speed_jitter"`
}

type ProjectileConfig struct {
	Speed float64 `toml:"speed"`
}

type LevelConfig struct {
	Path        string `toml:"path"`         // YAML level file, empty = built-in level
	CatalogPath string `toml:"catalog_path"` // YAML tower/enemy tables, empty = built-in
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Game.StartingGold < 0 {
		return errors.New("game.starting_gold must not be negative")
	}
	if c.Game.StartingLives <= 0 {
		return errors.New("game.starting_lives must be positive")
	}
	if c.Enemies.HPFactor <= 0 {
		return errors.New("enemies.hp_factor must be positive")
	}
	if c.Enemies.SpeedJitter < 0 || c.Enemies.SpeedJitter >= 1 {
		return errors.New("enemies.speed_jitter must be in [0, 1)")
	}
	if c.Projectile.Speed <= 0 {
		return errors.New("projectile.speed must be positive")
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			StartingGold:  StartingGold,
			StartingLives: StartingLives,
		},
		Enemies: EnemiesConfig{
			HPFactor:    EnemyHPFactor,
			SpeedJitter: EnemySpeedJitter,
		},
		Projectile: ProjectileConfig{
			Speed: ProjectileSpeed,
		},
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  "Tower Defense",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
