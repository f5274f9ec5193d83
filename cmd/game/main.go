// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	game "go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "config/game.toml", "path to the TOML config")
	levelPath := flag.String("level", "", "YAML level file, overrides the config")
	skipMenu := flag.Bool("skip-menu", false, "start straight in the game")
	flag.Parse()

	if err := run(*configPath, *levelPath, *skipMenu); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, levelPath string, skipMenu bool) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if levelPath != "" {
		cfg.Level.Path = levelPath
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	level, catalog, err := loadData(cfg.Level)
	if err != nil {
		return err
	}
	level = level.Scaled(config.ScreenWidth, config.ScreenHeight)

	g, err := game.NewGame(level, catalog, game.Options{
		StartingGold:    cfg.Game.StartingGold,
		StartingLives:   cfg.Game.StartingLives,
		HPFactor:        cfg.Enemies.HPFactor,
		SpeedJitter:     cfg.Enemies.SpeedJitter,
		ProjectileSpeed: cfg.Projectile.Speed,
		Seed:            cfg.Game.Seed,
		Logger:          logger,
	})
	if err != nil {
		return err
	}
	logger.Info("game ready",
		zap.String("level", level.Name),
		zap.Int("waves", len(level.Waves)),
		zap.Int("spots", len(level.TowerSpots)),
		zap.Int("gold", cfg.Game.StartingGold),
	)

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, g, cfg.Game.StartingGold, logger)
	if skipMenu {
		sm.SetState(gameState)
	} else {
		sm.SetState(state.NewMenuState(sm, gameState))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	return ebiten.RunGame(app)
}

// loadData читает уровень и каталог; пустые пути дают встроенные данные
func loadData(cfg config.LevelConfig) (defs.Level, *defs.Catalog, error) {
	level := defs.Level1()
	if cfg.Path != "" {
		l, err := defs.LoadLevel(cfg.Path)
		if err != nil {
			return defs.Level{}, nil, err
		}
		level = l
	}
	catalog := defs.DefaultCatalog()
	if cfg.CatalogPath != "" {
		c, err := defs.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return defs.Level{}, nil, err
		}
		catalog = c
	}
	return level, catalog, nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
