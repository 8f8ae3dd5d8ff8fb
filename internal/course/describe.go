package course

// TemplateReport summarizes one parsed template.
type TemplateReport struct {
	Index    int
	Row      Row
	Windows  []Window
	Passable bool
}

// Describe parses templates at the given width and reports their open
// windows. A nil slice means the defaults.
func Describe(templates []string, cols int) []TemplateReport {
	if templates == nil {
		templates = DefaultPatterns
	}
	out := make([]TemplateReport, 0, len(templates))
	for i, tpl := range templates {
		row := ParseRow(tpl, cols)
		out = append(out, TemplateReport{
			Index:    i,
			Row:      row,
			Windows:  row.Windows(),
			Passable: row.Passable(),
		})
	}
	return out
}

// MaxShift returns the largest column distance between the open windows of
// cyclically adjacent templates, or -1 if any template is impassable.
// Windows are compared by start column. A template with several gaps is
// measured from whichever of its gaps the player is in, to the nearest gap
// of the neighbour, in both walking directions.
// Shifts larger than the player can cover in one scroll period make the
// pattern-cycle course unfair.
func MaxShift(reports []TemplateReport) int {
	if len(reports) == 0 {
		return 0
	}
	worst := 0
	for i, r := range reports {
		next := reports[(i+1)%len(reports)]
		if !r.Passable || !next.Passable {
			return -1
		}
		worst = max(worst, shift(r.Windows, next.Windows), shift(next.Windows, r.Windows))
	}
	return worst
}

// shift returns how far a player in the worst window of from must move to
// reach the nearest window of to.
func shift(from, to []Window) int {
	worst := 0
	for _, w := range from {
		nearest := -1
		for _, v := range to {
			d := w.Start - v.Start
			if d < 0 {
				d = -d
			}
			if nearest < 0 || d < nearest {
				nearest = d
			}
		}
		worst = max(worst, nearest)
	}
	return worst
}
