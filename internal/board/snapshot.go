package board

// Snapshot captures the board state for the debug overlay and tests.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	Level     int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	MoveTimer uint8
	LootTimer uint16
	CrashedAt Cell // zero unless the game is over
}

// Snapshot returns the current board snapshot.
func (s *Screen) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Phase:     s.phase,
		Score:     s.score,
		Level:     s.level,
		Dir:       s.dir,
		MoveTimer: s.moveTimer,
		LootTimer: s.lootTimer,
		CrashedAt: s.crashedAt,
	}
	if s.snake != nil && s.snake.Len() > 0 {
		head := s.snake.Head()
		snap.SnakeLen = s.snake.Len()
		snap.HeadX = head.X
		snap.HeadY = head.Y
	}
	return snap
}
