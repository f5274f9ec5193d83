// internal/state/menu_state.go
package state

import (
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран с подсказкой по управлению
type MenuState struct {
	sm    *StateMachine
	next  *GameState
	lines []string
}

func NewMenuState(sm *StateMachine, next *GameState) *MenuState {
	lines := append([]string{next.game.Level().Name, ""}, ui.Controls(next.game.TowerTypes())...)
	lines = append(lines, "", "Press ENTER to begin")
	return &MenuState{sm: sm, next: next, lines: lines}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	top := config.ScreenHeight/2 - len(m.lines)*config.HUDLineHeight/2
	for i, line := range m.lines {
		ebitenutil.DebugPrintAt(screen, line, config.ScreenWidth/3, top+i*config.HUDLineHeight)
	}
}

func (m *MenuState) Exit() {}
