package course

// Build returns the course a new session starts with and the cursor the
// first scroll event continues from.
//
// Without prefill the course is empty and rows arrive one per scroll event.
// With prefill every visible row is filled: rows at and below playerRow are
// safe rows around playerCol so the player never spawns inside a wall, and
// the rows above are generated bottom-up so pattern continuity runs in
// scroll order.
func Build(gen Generator, visibleRows, playerRow, playerCol int, prefill bool) ([]Row, int) {
	if !prefill || visibleRows <= 0 {
		return []Row{}, 0
	}

	rows := make([]Row, visibleRows)
	for i := max(playerRow, 0); i < visibleRows; i++ {
		rows[i] = gen.Safe(playerCol)
	}

	cursor := 0
	for i := min(playerRow, visibleRows) - 1; i >= 0; i-- {
		rows[i], cursor = gen.Next(cursor)
	}
	return rows, cursor
}
