// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	StartingGold  = 1000
	StartingLives = 20

	EnemyHPFactor    = 0.8 // Общее ослабление врагов относительно таблицы
	EnemySpeedJitter = 0.2 // Скорость врага ±20% от базовой
	EnemyRadius      = 12.0
	HPBarHeight      = 4.0

	ProjectileSpeed  = 300.0 // pixels per second
	ProjectileRadius = 3.0

	SpotRadius       = 20.0
	TowerBaseRadius  = 12.0
	TowerLevelRadius = 2.0 // Прибавка к радиусу за уровень
	WaypointRadius   = 5.0
	PathStrokeWidth  = 2.0

	HUDLineHeight = 16
	HUDOffsetX    = 10
	HUDOffsetY    = 10
)

// SpeedOptions — множители скорости игры, переключаются по кругу
var SpeedOptions = []float64{1, 2, 4, 0.5}

var (
	BackgroundColor  color.Color = color.RGBA{20, 20, 30, 255}
	PathColor        color.Color = colornames.Gold
	SpotColor        color.Color = color.RGBA{0, 255, 0, 128}
	OccupiedColor    color.Color = color.RGBA{90, 90, 90, 128}
	EnemyColor       color.Color = colornames.Crimson
	HPBarBackColor   color.Color = colornames.Red
	HPBarColor       color.Color = colornames.Lime
	ProjectileColor  color.Color = colornames.Yellow
	RangeColor       color.Color = color.RGBA{255, 255, 255, 60}
	TowerStrokeColor color.Color = colornames.White
	TowerColors                  = map[string]color.Color{
		"point":  colornames.Royalblue,
		"splash": colornames.Orangered,
	}
	DefaultTowerColor color.Color = colornames.Slategray
)
