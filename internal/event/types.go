// internal/event/types.go
package event

const (
	WaveTriggered  EventType = "WaveTriggered"  // first enemy of a wave spawned, Data: wave index
	EnemyDestroyed EventType = "EnemyDestroyed" // Data: donburi.Entity
	ScoreChanged   EventType = "ScoreChanged"   // Data: int64 new score
	PlayerDied     EventType = "PlayerDied"
	LevelCompleted EventType = "LevelCompleted"
	ConfigReloaded EventType = "ConfigReloaded" // Data: config.Config
)
