package entity

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
)

func TestNewStateStartsPaused(t *testing.T) {
	s := NewState(defs.Level1(), 1000, 20)
	if !s.Paused || !s.FirstStart {
		t.Fatalf("new state must start paused and waiting for the first start")
	}
	if s.Gold != 1000 || s.Lives != 20 || s.MaxLives != 20 {
		t.Fatalf("unexpected stats: gold=%d lives=%d max=%d", s.Gold, s.Lives, s.MaxLives)
	}
	if len(s.Path) != 6 || len(s.Spots) != 7 {
		t.Fatalf("unexpected level layout: %d waypoints, %d spots", len(s.Path), len(s.Spots))
	}
}

func TestPurgeEnemiesKeepsOrder(t *testing.T) {
	s := NewState(defs.Level{}, 0, 1)
	for i := 0; i < 5; i++ {
		s.AddEnemy(&component.Enemy{ID: s.NewEntity(), Alive: i%2 == 0})
	}
	if removed := s.PurgeEnemies(); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	want := []uint64{1, 3, 5}
	if len(s.Enemies) != len(want) {
		t.Fatalf("expected %d enemies, got %d", len(want), len(s.Enemies))
	}
	for i, e := range s.Enemies {
		if uint64(e.ID) != want[i] {
			t.Fatalf("enemy %d: got id %d, want %d", i, e.ID, want[i])
		}
	}
	if _, ok := s.Enemy(2); ok {
		t.Fatalf("purged enemy must not be found by id")
	}
	if _, ok := s.Enemy(3); !ok {
		t.Fatalf("live enemy must be found by id")
	}
}

func TestPurgeProjectiles(t *testing.T) {
	s := NewState(defs.Level{}, 0, 1)
	s.Projectiles = []*component.Projectile{{ID: 1, Hit: true}, {ID: 2}, {ID: 3, Hit: true}}
	s.PurgeProjectiles()
	if len(s.Projectiles) != 1 || s.Projectiles[0].ID != 2 {
		t.Fatalf("unexpected projectiles after purge: %+v", s.Projectiles)
	}
}
