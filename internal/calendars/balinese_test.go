package calendars

import (
	"testing"
	"time"
)

// anchorDay is Galungan of the reference Pawukon cycle.
var anchorDay = time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)

func TestBalineseAnchor(t *testing.T) {
	res := mustConvert(t, anchorDay, Balinese)

	if res.Cycle != "Buda Kliwon" {
		t.Errorf("cycle = %q, want Buda Kliwon", res.Cycle)
	}
	if res.Month != "Dungulan" {
		t.Errorf("wuku = %q, want Dungulan", res.Month)
	}
	if res.Day != 4 {
		t.Errorf("day = %d, want 4 (Buda)", res.Day)
	}
	if res.Holiday != "Galungan" {
		t.Errorf("holiday = %q, want Galungan", res.Holiday)
	}
	if res.Native == nil || res.Native.Cycle == nil {
		t.Fatal("native cycle data missing")
	}
	if res.Native.Cycle.WukuIndex != 10 {
		t.Errorf("wukuIndex = %d, want 10", res.Native.Cycle.WukuIndex)
	}
}

func TestBalinesePeriodicity(t *testing.T) {
	base := mustConvert(t, anchorDay, Balinese)

	// The full Pawukon repeats every 210 days: identical triad.
	full := mustConvert(t, anchorDay.AddDate(0, 0, 210), Balinese)
	if full.Cycle != base.Cycle || full.Month != base.Month || full.Day != base.Day {
		t.Errorf("after 210 days got %s / %s / %d, want %s / %s / %d",
			full.Cycle, full.Month, full.Day, base.Cycle, base.Month, base.Day)
	}

	// The saptawara-pancawara pairing repeats every 35 days, but the wuku
	// has moved on by five.
	pair := mustConvert(t, anchorDay.AddDate(0, 0, 35), Balinese)
	if pair.Cycle != base.Cycle {
		t.Errorf("after 35 days cycle = %q, want %q", pair.Cycle, base.Cycle)
	}
	if pair.Month == base.Month {
		t.Errorf("after 35 days wuku should differ, still %q", pair.Month)
	}
	if pair.Native.Cycle.WukuIndex != 15 {
		t.Errorf("after 35 days wukuIndex = %d, want 15", pair.Native.Cycle.WukuIndex)
	}
}

func TestBalineseBeforeAnchor(t *testing.T) {
	// One full Pawukon before the anchor: identical triad, no negative
	// index artifacts.
	res := mustConvert(t, anchorDay.AddDate(0, 0, -210), Balinese)
	if res.Cycle != "Buda Kliwon" || res.Month != "Dungulan" || res.Day != 4 {
		t.Errorf("got %s / %s / %d, want Buda Kliwon / Dungulan / 4",
			res.Cycle, res.Month, res.Day)
	}

	// The day before the anchor steps every cycle back by one.
	prev := mustConvert(t, anchorDay.AddDate(0, 0, -1), Balinese)
	if prev.Cycle != "Anggara Wage" {
		t.Errorf("cycle = %q, want Anggara Wage", prev.Cycle)
	}
	if prev.Day != 3 {
		t.Errorf("day = %d, want 3 (Anggara)", prev.Day)
	}
}

func TestBalineseSakaYear(t *testing.T) {
	res := mustConvert(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), Balinese)
	if res.Year.Number != 1946 {
		t.Errorf("year = %d, want 1946", res.Year.Number)
	}
}
