// internal/app/errors.go
package app

import (
	"errors"

	"go-tower-sim/internal/system"
)

// Ошибки управляющих операций. Проверять через errors.Is.
var (
	ErrInsufficientGold = system.ErrInsufficientGold
	ErrMaxLevel         = system.ErrMaxLevel
	ErrUnknownType      = system.ErrUnknownType
	ErrSpotOccupied     = errors.New("tower spot is occupied")
	ErrUnknownSpot      = errors.New("unknown tower spot")
	ErrUnknownTower     = errors.New("unknown tower")
)
