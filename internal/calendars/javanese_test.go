package calendars

import (
	"testing"
	"time"
)

func TestPasaranAnchor(t *testing.T) {
	// 1 January 2000 pins the five-day market week to Pahing.
	res := mustConvert(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), Javanese)
	if res.Cycle != "Pahing" {
		t.Errorf("pasaran = %q, want Pahing", res.Cycle)
	}
}

func TestPasaranCycle(t *testing.T) {
	// The pasaran walks Legi, Pahing, Pon, Wage, Kliwon and wraps every
	// five days, including backwards across the anchor.
	anchor := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	want := []string{"Pahing", "Pon", "Wage", "Kliwon", "Legi", "Pahing"}
	for i, name := range want {
		res := mustConvert(t, anchor.AddDate(0, 0, i), Javanese)
		if res.Cycle != name {
			t.Errorf("day +%d: pasaran = %q, want %q", i, res.Cycle, name)
		}
	}

	before := mustConvert(t, anchor.AddDate(0, 0, -1), Javanese)
	if before.Cycle != "Legi" {
		t.Errorf("day -1: pasaran = %q, want Legi", before.Cycle)
	}
}

func TestJavaneseTracksHijri(t *testing.T) {
	// The Javanese lunar structure follows the Hijri months with the Anno
	// Javanico year running 512 ahead.
	dates := []time.Time{
		time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.July, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
	}

	for _, d := range dates {
		jv := mustConvert(t, d, Javanese)
		hj := mustConvert(t, d, Hijri)

		if jv.Year.Number != hj.Year.Number+javaneseYearOffset {
			t.Errorf("%v: javanese year %d, hijri year %d, want offset %d",
				d, jv.Year.Number, hj.Year.Number, javaneseYearOffset)
		}
		if jv.Day != hj.Day {
			t.Errorf("%v: javanese day %d, hijri day %d", d, jv.Day, hj.Day)
		}
	}
}

func TestJavaneseMonthNames(t *testing.T) {
	// 1 Shawwal maps to 1 Sawal.
	res := mustConvert(t, time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC), Javanese)
	if res.Month != "Sawal" {
		t.Errorf("month = %q, want Sawal", res.Month)
	}
	if res.Day != 1 {
		t.Errorf("day = %d, want 1", res.Day)
	}
}
