// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

// PlaceTower строит башню towerType на месте spotID.
// Проверки по порядку: тип, место, занятость, золото.
func (g *Game) PlaceTower(towerType defs.TowerType, spotID int) (types.EntityID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	def, err := g.canPlaceTower(towerType, spotID)
	if err != nil {
		return 0, err
	}

	spot := &g.state.Spots[spotID]
	tower, err := g.combatSystem.CreateTower(towerType, spot.Position, spotID)
	if err != nil {
		return 0, err
	}
	g.state.Gold -= def.BasePrice
	spot.Occupied = true

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		ID:    tower.ID,
		Type:  tower.Type,
		Level: tower.Level,
		Spot:  spotID,
		Cost:  def.BasePrice,
	}})
	return tower.ID, nil
}

func (g *Game) canPlaceTower(towerType defs.TowerType, spotID int) (defs.TowerDefinition, error) {
	def, ok := g.catalog.Tower(towerType)
	if !ok {
		return def, fmt.Errorf("tower %q: %w", towerType, ErrUnknownType)
	}
	if spotID < 0 || spotID >= len(g.state.Spots) {
		return def, fmt.Errorf("spot %d: %w", spotID, ErrUnknownSpot)
	}
	if g.state.Spots[spotID].Occupied {
		return def, fmt.Errorf("spot %d: %w", spotID, ErrSpotOccupied)
	}
	if g.state.Gold < def.BasePrice {
		return def, ErrInsufficientGold
	}
	return def, nil
}

// UpgradeTower поднимает уровень башни на один.
func (g *Game) UpgradeTower(id types.EntityID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	tower, ok := g.state.Tower(id)
	if !ok {
		return fmt.Errorf("tower %d: %w", id, ErrUnknownTower)
	}
	spent, err := g.combatSystem.Upgrade(tower)
	if err != nil {
		return err
	}

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{
		ID:    tower.ID,
		Type:  tower.Type,
		Level: tower.Level,
		Spot:  tower.Spot,
		Cost:  spent,
	}})
	return nil
}

// TowerTypes — доступные типы башен в порядке каталога
func (g *Game) TowerTypes() []defs.TowerDefinition {
	return g.catalog.Towers()
}
