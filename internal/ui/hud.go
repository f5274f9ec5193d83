// internal/ui/hud.go
package ui

import (
	game "go-tower-sim/internal/app"
	"go-tower-sim/internal/defs"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HUD собирает строки верхней панели.
type HUD struct {
	printer *message.Printer
}

func NewHUD(tag language.Tag) *HUD {
	return &HUD{printer: message.NewPrinter(tag)}
}

// Lines возвращает текст панели для снимка и выбранного типа башни.
func (h *HUD) Lines(snap game.Snapshot, selected defs.TowerDefinition) []string {
	p := h.printer
	lines := []string{
		p.Sprintf("Gold: %d   Lives: %d/%d", snap.Gold, snap.Lives, snap.MaxLives),
		p.Sprintf("Wave: %d/%d (%s)", WaveNumber(snap), snap.TotalWaves, snap.WavePhase),
		p.Sprintf("Speed: x%v   Time: %.1fs", snap.Speed, snap.GameTime),
		p.Sprintf("Tower: %s (%d gold)", selected.ID, selected.BasePrice),
	}
	switch {
	case snap.GameOver:
		lines = append(lines, "GAME OVER - press R to restart")
	case snap.FirstStart:
		lines = append(lines, "Press SPACE to start")
	case snap.Paused:
		lines = append(lines, "PAUSED")
	case snap.WaveReady:
		lines = append(lines, "Press N to send the next wave")
	}
	return lines
}

// Controls — подсказка по клавишам
func Controls(towers []defs.TowerDefinition) []string {
	p := message.NewPrinter(language.English)
	lines := make([]string, 0, len(towers)+5)
	for i, t := range towers {
		lines = append(lines, p.Sprintf("%d  select %s tower", i+1, t.ID))
	}
	return append(lines,
		"LMB  place tower on a free spot / upgrade a tower",
		"SPACE  pause",
		"S  game speed",
		"N  send next wave",
		"R  restart",
	)
}
