package course

import "testing"

func TestParseRow(t *testing.T) {
	tests := []struct {
		name     string
		template string
		cols     int
		expected string
	}{
		{"exact width", "■■■   ■■■", 9, "■■■   ■■■"},
		{"hash walls", "##.#", 4, "■■ ■"},
		{"short template padded open", "■■", 5, "■■   "},
		{"long template truncated", "■■■   ■■■", 4, "■■■ "},
		{"empty template", "", 3, "   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row := ParseRow(tc.template, tc.cols)
			if len(row) != tc.cols {
				t.Fatalf("len(ParseRow()) = %d, expected %d", len(row), tc.cols)
			}
			if got := row.String(); got != tc.expected {
				t.Errorf("ParseRow(%q, %d) = %q, expected %q", tc.template, tc.cols, got, tc.expected)
			}
		})
	}
}

func TestSafeRow(t *testing.T) {
	if got := SafeRow(9, 4).String(); got != DefaultPatterns[0] {
		t.Errorf("SafeRow(9, 4) = %q, expected %q", got, DefaultPatterns[0])
	}

	for cols := 1; cols <= 12; cols++ {
		for col := 0; col < cols; col++ {
			row := SafeRow(cols, col)
			if row.At(col) != Open {
				t.Errorf("SafeRow(%d, %d) should be open at column %d", cols, col, col)
			}
			if w := row.Windows(); len(w) != 1 || w[0].Width() != min(3, cols) {
				t.Errorf("SafeRow(%d, %d) windows = %v, expected one window of width %d", cols, col, w, min(3, cols))
			}
		}
	}
}

func TestRowAt(t *testing.T) {
	row := ParseRow("■ ■", 3)

	tests := []struct {
		col      int
		expected Cell
	}{
		{0, Wall},
		{1, Open},
		{2, Wall},
		{-1, Open},
		{3, Open},
	}
	for _, tc := range tests {
		if got := row.At(tc.col); got != tc.expected {
			t.Errorf("At(%d) = %v, expected %v", tc.col, got, tc.expected)
		}
	}
}

func TestRowWindows(t *testing.T) {
	tests := []struct {
		template string
		expected []Window
	}{
		{"■■■   ■■■", []Window{{3, 6}}},
		{"   ■■■■■■", []Window{{0, 3}}},
		{"■■■■■■   ", []Window{{6, 9}}},
		{" ■ ■ ", []Window{{0, 1}, {2, 3}, {4, 5}}},
		{"■■■", nil},
	}

	for _, tc := range tests {
		row := ParseRow(tc.template, len([]rune(tc.template)))
		got := row.Windows()
		if len(got) != len(tc.expected) {
			t.Errorf("Windows(%q) = %v, expected %v", tc.template, got, tc.expected)
			continue
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				t.Errorf("Windows(%q)[%d] = %v, expected %v", tc.template, i, got[i], tc.expected[i])
			}
		}
	}
}

func TestRowCloneIsIndependent(t *testing.T) {
	row := SafeRow(9, 4)
	clone := row.Clone()
	clone[4] = Wall

	if row[4] != Open {
		t.Error("modifying a clone must not change the original row")
	}
	if row.Equal(clone) {
		t.Error("Equal should report the modified clone as different")
	}
	if !row.Equal(SafeRow(9, 4)) {
		t.Error("Equal should report identical rows as equal")
	}
}

func TestPassable(t *testing.T) {
	if !ParseRow("■ ■", 3).Passable() {
		t.Error("row with an open cell should be passable")
	}
	if ParseRow("■■■", 3).Passable() {
		t.Error("all-wall row should not be passable")
	}
}
