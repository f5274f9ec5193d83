// internal/ui/wave_indicator.go
package ui

import (
	"strings"

	game "go-tower-sim/internal/app"
)

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveNumber — номер волны для показа игроку, с единицы.
// До первой волны 0, после последней равен числу волн.
func WaveNumber(snap game.Snapshot) int {
	switch {
	case snap.WaveActive:
		return snap.WaveIndex + 1
	case snap.WaveIndex >= snap.TotalWaves:
		return snap.TotalWaves
	default:
		return snap.WaveIndex
	}
}

// WaveBanner — крупная надпись при смене волны, например "WAVE IV".
func WaveBanner(index int, started bool) string {
	if started {
		return "WAVE " + toRoman(index+1)
	}
	return "WAVE " + toRoman(index+1) + " CLEARED"
}
