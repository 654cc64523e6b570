package calendars

import (
	"errors"
	"testing"
	"time"
)

func TestMonthBoundariesGregorian(t *testing.T) {
	start, end, err := MonthBoundaries(
		time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC), Gregorian, Options{})
	if err != nil {
		t.Fatalf("MonthBoundaries failed: %v", err)
	}

	wantStart := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestMonthBoundariesBalineseWuku(t *testing.T) {
	// A wuku is exactly one seven-day week.
	start, end, err := MonthBoundaries(anchorDay, Balinese, Options{})
	if err != nil {
		t.Fatalf("MonthBoundaries failed: %v", err)
	}

	if days := int(end.Sub(start).Hours()/24) + 1; days != 7 {
		t.Errorf("wuku spans %d days, want 7", days)
	}

	// The span must actually cover the query date.
	if anchorDay.Before(start) || anchorDay.After(end) {
		t.Errorf("anchor %v outside [%v, %v]", anchorDay, start, end)
	}

	// Every day inside the span carries the same wuku.
	base := mustConvert(t, anchorDay, Balinese)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if res := mustConvert(t, d, Balinese); res.Month != base.Month {
			t.Errorf("%v: wuku %q, want %q", d, res.Month, base.Month)
		}
	}
}

func TestMonthBoundariesHijri(t *testing.T) {
	// Lunar months are 29 or 30 days.
	start, end, err := MonthBoundaries(
		time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC), Hijri, Options{})
	if err != nil {
		t.Fatalf("MonthBoundaries failed: %v", err)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days != 29 && days != 30 {
		t.Errorf("hijri month spans %d days, want 29 or 30", days)
	}

	if res := mustConvert(t, start, Hijri); res.Day != 1 {
		t.Errorf("month starts on native day %d, want 1", res.Day)
	}
}

func TestMonthBoundariesUnknownType(t *testing.T) {
	_, _, err := MonthBoundaries(time.Now(), CalendarType("klingon"), Options{})
	if !errors.Is(err, ErrUnknownCalendar) {
		t.Errorf("err = %v, want ErrUnknownCalendar", err)
	}
}
