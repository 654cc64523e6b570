package calendars

import "testing"

func TestHolidayFor(t *testing.T) {
	tests := []struct {
		name  string
		typ   CalendarType
		month string
		day   int
		want  string
	}{
		{"gregorian christmas", Gregorian, "December", 25, "Christmas Day"},
		{"hijri eid", Hijri, "Shawwal", 1, "Eid al-Fitr"},
		{"month labels compare case-insensitively", Hijri, "shawwal", 1, "Eid al-Fitr"},
		{"balinese galungan", Balinese, "Dungulan", 4, "Galungan"},
		{"miss returns empty", Gregorian, "December", 26, ""},
		{"unknown type returns empty", CalendarType("klingon"), "December", 25, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HolidayFor(tt.typ, tt.month, tt.day); got != tt.want {
				t.Errorf("HolidayFor(%s, %q, %d) = %q, want %q",
					tt.typ, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestHolidayRegistryKeysAreRegistered(t *testing.T) {
	// loadHolidays panics on unknown keys at init; this guards the table
	// contents against drifting away from converter month labels.
	for typ, defs := range holidayTable {
		if Find(typ) == nil {
			t.Errorf("registry references unknown calendar %q", typ)
		}
		for _, def := range defs {
			if def.Day < 0 || def.Name == "" {
				t.Errorf("%s: malformed entry %+v", typ, def)
			}
		}
	}
}
