package drive

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick              uint64
	Seed              int64
	Distance          int
	PlayerColumn      int
	PlayerRow         int
	PatternCursor     int
	ScrollAccumulator int
	InputCooldown     int
	Rows              []string
	Paused            bool
	Phase             Phase
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	rows := make([]string, g.state.RowCount())
	for i := range rows {
		rows[i] = g.state.Row(i).String()
	}

	return Snapshot{
		Tick:              g.tick,
		Seed:              g.seed,
		Distance:          g.state.Distance(),
		PlayerColumn:      g.state.PlayerColumn(),
		PlayerRow:         g.state.PlayerRow(),
		PatternCursor:     g.state.PatternCursor(),
		ScrollAccumulator: g.state.ScrollAccumulator(),
		InputCooldown:     g.state.InputCooldown(),
		Rows:              rows,
		Paused:            g.paused,
		Phase:             g.state.Phase(),
	}
}
