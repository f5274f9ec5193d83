package ui

import (
	"strings"
	"testing"

	game "go-tower-sim/internal/app"
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"

	"golang.org/x/text/language"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 10: "X", 14: "XIV", 1994: "MCMXCIV"}
	for in, want := range tests {
		if got := toRoman(in); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestWaveNumber(t *testing.T) {
	tests := []struct {
		snap game.Snapshot
		want int
	}{
		{game.Snapshot{WaveIndex: 0, TotalWaves: 10}, 0},
		{game.Snapshot{WaveIndex: 0, TotalWaves: 10, WaveActive: true}, 1},
		{game.Snapshot{WaveIndex: 3, TotalWaves: 10}, 3},
		{game.Snapshot{WaveIndex: 10, TotalWaves: 10}, 10},
	}
	for _, tt := range tests {
		if got := WaveNumber(tt.snap); got != tt.want {
			t.Errorf("WaveNumber(%+v) = %d, want %d", tt.snap, got, tt.want)
		}
	}
}

func TestHUDLines(t *testing.T) {
	hud := NewHUD(language.English)
	snap := game.Snapshot{Gold: 12500, Lives: 7, MaxLives: 20, TotalWaves: 10, Speed: 2, WaveReady: true}
	lines := hud.Lines(snap, defs.TowerDefinition{ID: defs.TowerPoint, BasePrice: 80})

	if lines[0] != "Gold: 12,500   Lives: 7/20" {
		t.Fatalf("unexpected gold line %q", lines[0])
	}
	if !strings.Contains(lines[2], "x2") {
		t.Fatalf("speed missing in %q", lines[2])
	}
	if !strings.Contains(lines[3], "point") || !strings.Contains(lines[3], "80") {
		t.Fatalf("tower missing in %q", lines[3])
	}
	if last := lines[len(lines)-1]; !strings.Contains(last, "N") {
		t.Fatalf("expected wave hint, got %q", last)
	}

	snap.GameOver = true
	lines = hud.Lines(snap, defs.TowerDefinition{})
	if last := lines[len(lines)-1]; !strings.HasPrefix(last, "GAME OVER") {
		t.Fatalf("expected game over line, got %q", last)
	}
}

func TestHitTesting(t *testing.T) {
	snap := game.Snapshot{
		Spots: []game.SpotView{
			{ID: 0, Position: component.Position{X: 100, Y: 100}, Occupied: true},
			{ID: 1, Position: component.Position{X: 300, Y: 100}},
		},
		Towers: []game.TowerView{
			{ID: 7, Level: 1, Position: component.Position{X: 100, Y: 100}},
		},
	}

	if id, ok := TowerAt(snap, 105, 100); !ok || id != 7 {
		t.Fatalf("expected tower 7, got %d %v", id, ok)
	}
	if _, ok := TowerAt(snap, 300, 100); ok {
		t.Fatal("no tower on a free spot")
	}
	if _, ok := FreeSpotAt(snap, 100, 100); ok {
		t.Fatal("occupied spot must not be returned")
	}
	if id, ok := FreeSpotAt(snap, 310, 110); !ok || id != 1 {
		t.Fatalf("expected spot 1, got %d %v", id, ok)
	}
	if _, ok := FreeSpotAt(snap, 600, 600); ok {
		t.Fatal("click far from spots must miss")
	}
}
