package calendars

import "testing"

func TestNumeral(t *testing.T) {
	tests := []struct {
		typ  CalendarType
		n    int
		want string
	}{
		{Hijri, 1447, "١٤٤٧"},
		{Persian, 1404, "۱۴۰۴"},
		{Saka, 1947, "१९४७"},
		{Buddhist, 2568, "๒๕๖๘"},
		{Gregorian, 2025, "2025"}, // no native digit set
		{Hijri, 0, "٠"},
	}

	for _, tt := range tests {
		if got := Numeral(tt.typ, tt.n); got != tt.want {
			t.Errorf("Numeral(%s, %d) = %q, want %q", tt.typ, tt.n, got, tt.want)
		}
	}
}

func TestHebrewNumeral(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{3, "ג׳"},
		{10, "י׳"},
		{15, "ט״ו"}, // 9+6, never 10+5
		{16, "ט״ז"}, // 9+7, never 10+6
		{18, "י״ח"},
		{100, "ק׳"},
		{786, "תשפ״ו"},
		{5786, "ה׳תשפ״ו"},
		{5000, "ה׳"},
	}

	for _, tt := range tests {
		if got := hebrewNumeral(tt.n); got != tt.want {
			t.Errorf("hebrewNumeral(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
