package calendars

import (
	"testing"
	"time"
)

func TestHijriEidAlFitr(t *testing.T) {
	// Umm al-Qura: 1 Shawwal 1446 fell on 30 March 2025.
	res := mustConvert(t, time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC), Hijri)

	if res.Day != 1 || res.Month != "Shawwal" || res.Year.Number != 1446 {
		t.Errorf("got %d %s %d, want 1 Shawwal 1446", res.Day, res.Month, res.Year.Number)
	}
	if res.FullDate != "1 Shawwal 1446 AH" {
		t.Errorf("fullDate = %q", res.FullDate)
	}
	if res.Holiday != "Eid al-Fitr" {
		t.Errorf("holiday = %q, want Eid al-Fitr", res.Holiday)
	}
	if res.MonthNative != "شوال" {
		t.Errorf("monthNative = %q, want شوال", res.MonthNative)
	}
}

func TestTabularHijriEpoch(t *testing.T) {
	// The tabular fallback pins 1 Muharram 1 AH to JDN 1948440.
	day, month, year := tabularHijri(1948440)
	if day != 1 || month != 1 || year != 1 {
		t.Errorf("got %d/%d/%d, want 1/1/1", day, month, year)
	}
}

func TestTabularHijriRanges(t *testing.T) {
	// Walking three tabular years day by day stays within valid month and
	// day ranges and the day count advances monotonically.
	start := 1948440
	prevDay, prevMonth, prevYear := tabularHijri(start)
	for jdn := start + 1; jdn < start+3*355; jdn++ {
		day, month, year := tabularHijri(jdn)
		if month < 1 || month > 12 || day < 1 || day > 30 {
			t.Fatalf("jdn %d: out of range %d/%d/%d", jdn, day, month, year)
		}
		sameMonth := month == prevMonth && year == prevYear
		if sameMonth && day != prevDay+1 {
			t.Fatalf("jdn %d: day %d follows %d in month %d", jdn, day, prevDay, prevMonth)
		}
		if !sameMonth && day != 1 {
			t.Fatalf("jdn %d: month changed but day = %d", jdn, day)
		}
		prevDay, prevMonth, prevYear = day, month, year
	}
}
