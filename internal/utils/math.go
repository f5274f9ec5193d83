// internal/utils/math.go
package utils

import "math"

// Distance возвращает евклидово расстояние между двумя точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// DistanceSq возвращает квадрат расстояния. Используется там, где достаточно
// сравнить расстояние с радиусом, без извлечения корня.
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// WithinRadius проверяет, лежит ли точка (x2, y2) в круге радиуса r вокруг (x1, y1).
// Граница включается.
func WithinRadius(x1, y1, x2, y2, r float64) bool {
	return DistanceSq(x1, y1, x2, y2) <= r*r
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
