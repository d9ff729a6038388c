package component

// GameState — phase of the current run
type GameState int

const (
	PlayingState GameState = iota
	LevelCompleteState
	GameOverState
)

func (s GameState) String() string {
	switch s {
	case PlayingState:
		return "playing"
	case LevelCompleteState:
		return "level complete"
	case GameOverState:
		return "game over"
	}
	return "unknown"
}
