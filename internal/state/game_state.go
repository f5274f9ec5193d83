// internal/state/game_state.go
package state

import (
	"errors"
	"image/color"

	game "go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/ui"
	"go-tower-sim/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const bannerDuration = 2.5 // секунд

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — основной экран: ввод игрока, тик симуляции, отрисовка
type GameState struct {
	sm           *StateMachine
	game         *game.Game
	hud          *ui.HUD
	logger       *zap.Logger
	startingGold int
	selected     int // Индекс выбранного типа башни

	banner      string
	bannerTimer float64
}

func NewGameState(sm *StateMachine, g *game.Game, startingGold int, logger *zap.Logger) *GameState {
	if logger == nil {
		logger = zap.NewNop()
	}
	gs := &GameState{
		sm:           sm,
		game:         g,
		hud:          ui.NewHUD(language.English),
		logger:       logger,
		startingGold: startingGold,
	}
	g.EventDispatcher.SubscribeAll(gs, event.WaveStarted, event.WaveEnded, event.GameOver)
	return gs
}

// OnEvent вызывается из Tick, в том же потоке, что и Update.
// Game здесь трогать нельзя: он под мьютексом.
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted, event.WaveEnded:
		if data, ok := e.Data.(event.WaveData); ok {
			g.showBanner(ui.WaveBanner(data.Index, e.Type == event.WaveStarted))
		}
	case event.GameOver:
		g.showBanner("GAME OVER")
	}
}

func (g *GameState) showBanner(text string) {
	g.banner = text
	g.bannerTimer = bannerDuration
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if g.bannerTimer > 0 {
		g.bannerTimer -= deltaTime
	}

	towers := g.game.TowerTypes()
	for i, key := range towerKeys {
		if i < len(towers) && inpututil.IsKeyJustPressed(key) {
			g.selected = i
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		snap := g.game.Snapshot()
		wasFirstStart := snap.FirstStart
		if paused := g.game.TogglePause(); paused && !wasFirstStart && !snap.GameOver {
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.game.ToggleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.game.SendWaveEarly()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.game.Restart(g.startingGold)
		g.bannerTimer = 0
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleGameClick(float64(x), float64(y))
	}

	g.game.Tick(deltaTime)
}

// handleGameClick улучшает башню под курсором или строит выбранную на свободном месте
func (g *GameState) handleGameClick(x, y float64) {
	snap := g.game.Snapshot()
	if id, ok := ui.TowerAt(snap, x, y); ok {
		if err := g.game.UpgradeTower(id); err != nil {
			g.reject("upgrade", err)
		}
		return
	}
	if spot, ok := ui.FreeSpotAt(snap, x, y); ok {
		towers := g.game.TowerTypes()
		if len(towers) == 0 {
			return
		}
		if _, err := g.game.PlaceTower(towers[g.selected].ID, spot); err != nil {
			g.reject("place", err)
		}
	}
}

func (g *GameState) reject(action string, err error) {
	g.logger.Debug("action rejected", zap.String("action", action), zap.Error(err))
	switch {
	case errors.Is(err, game.ErrInsufficientGold):
		g.showBanner("NOT ENOUGH GOLD")
	case errors.Is(err, game.ErrMaxLevel):
		g.showBanner("MAX LEVEL")
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	screen.Fill(config.BackgroundColor)

	// Путь
	for i := 1; i < len(snap.Path); i++ {
		a, b := snap.Path[i-1], snap.Path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), config.PathStrokeWidth, config.PathColor, true)
	}
	for _, p := range snap.Path {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.WaypointRadius, config.PathColor, true)
	}

	for _, s := range snap.Spots {
		clr := config.SpotColor
		if s.Occupied {
			clr = config.OccupiedColor
		}
		vector.DrawFilledCircle(screen, float32(s.Position.X), float32(s.Position.Y), config.SpotRadius, clr, true)
	}

	for _, t := range snap.Towers {
		x, y := float32(t.Position.X), float32(t.Position.Y)
		vector.StrokeCircle(screen, x, y, float32(t.Range), 1, config.RangeColor, true)
		r := float32(ui.TowerRadius(t.Level))
		vector.DrawFilledCircle(screen, x, y, r, towerColor(string(t.Type)), true)
		vector.StrokeCircle(screen, x, y, r, 2, config.TowerStrokeColor, true)
	}

	for _, e := range snap.Enemies {
		x, y := float32(e.Position.X), float32(e.Position.Y)
		vector.DrawFilledCircle(screen, x, y, config.EnemyRadius, config.EnemyColor, true)
		drawHPBar(screen, x, y-config.EnemyRadius-config.HPBarHeight-2, e.HP, e.MaxHP)
	}

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), config.ProjectileRadius, config.ProjectileColor, true)
	}

	towers := g.game.TowerTypes()
	if len(towers) > 0 {
		for i, line := range g.hud.Lines(snap, towers[g.selected]) {
			ebitenutil.DebugPrintAt(screen, line, config.HUDOffsetX, config.HUDOffsetY+i*config.HUDLineHeight)
		}
	}
	if g.bannerTimer > 0 {
		ebitenutil.DebugPrintAt(screen, g.banner, config.ScreenWidth/2-len(g.banner)*3, config.ScreenHeight/2)
	}
}

func drawHPBar(screen *ebiten.Image, cx, top float32, hp, maxHP float64) {
	if maxHP <= 0 {
		return
	}
	ratio := float32(utils.Clamp(hp/maxHP, 0, 1))
	width := float32(config.EnemyRadius * 2)
	left := cx - width/2
	vector.DrawFilledRect(screen, left, top, width, config.HPBarHeight, config.HPBarBackColor, false)
	vector.DrawFilledRect(screen, left, top, width*ratio, config.HPBarHeight, config.HPBarColor, false)
}

func towerColor(towerType string) color.Color {
	if c, ok := config.TowerColors[towerType]; ok {
		return c
	}
	return config.DefaultTowerColor
}

func (g *GameState) Exit() {}
