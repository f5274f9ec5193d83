// internal/system/errors.go
package system

import "errors"

var (
	ErrInsufficientGold = errors.New("insufficient gold")
	ErrMaxLevel         = errors.New("tower is at max level")
	ErrUnknownType      = errors.New("unknown entity type")
)
