// internal/component/wave.go
package component

// GroupRuntime — счётчики одной группы врагов в текущей волне
type GroupRuntime struct {
	Spawned     int     // Сколько уже выпущено
	TimerAcc    float64 // Накопленное время с последнего спавна
	IntervalSec float64 // Интервал спавна в секундах
}

// WaveRuntime хранит изменяемое состояние активной волны.
// Определение волны (defs.WaveDefinition) при этом остаётся неизменным.
type WaveRuntime struct {
	Groups []GroupRuntime
}
