// internal/component/game_state.go
package component

// WavePhase — фаза планировщика волн
type WavePhase int

const (
	WavePending  WavePhase = iota // Ждём таймер до следующей волны
	WaveActive                    // Идёт спавн и/или на поле есть враги
	WaveFinished                  // Волны закончились
)

func (p WavePhase) String() string {
	switch p {
	case WavePending:
		return "pending"
	case WaveActive:
		return "active"
	case WaveFinished:
		return "finished"
	default:
		return "unknown"
	}
}
