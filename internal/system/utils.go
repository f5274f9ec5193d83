// internal/system/utils.go
package system

import "go-tower-sim/internal/component"

// ApplyDamage наносит урон врагу. Здоровье может уйти в минус: ограничение
// нулём — дело отрисовки, а удаление произойдёт при подведении итогов кадра.
func ApplyDamage(enemy *component.Enemy, damage float64) {
	if damage <= 0 {
		return
	}
	enemy.HP -= damage
}
