package component

// Phase — фаза игрового цикла
type Phase int

const (
	Running Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game_over"
	}
	return "running"
}

// GameState — компонент для хранения счёта, уровня и фазы игры
type GameState struct {
	Score int
	Level int
	Phase Phase
}

// Running сообщает, обрабатывается ли ещё логика.
func (s *GameState) Running() bool {
	return s.Phase == Running
}
