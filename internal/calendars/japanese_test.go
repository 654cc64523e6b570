package calendars

import (
	"testing"
	"time"
)

func TestJapaneseEras(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		year string
	}{
		{
			name: "first day of Reiwa",
			date: time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC),
			year: "Reiwa 1",
		},
		{
			name: "last day of Heisei",
			date: time.Date(2019, time.April, 30, 0, 0, 0, 0, time.UTC),
			year: "Heisei 31",
		},
		{
			name: "first day of Heisei",
			date: time.Date(1989, time.January, 8, 0, 0, 0, 0, time.UTC),
			year: "Heisei 1",
		},
		{
			name: "last day of Showa",
			date: time.Date(1989, time.January, 7, 0, 0, 0, 0, time.UTC),
			year: "Showa 64",
		},
		{
			name: "current era",
			date: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			year: "Reiwa 7",
		},
		{
			name: "before Meiji falls back to the western count",
			date: time.Date(1850, time.January, 1, 0, 0, 0, 0, time.UTC),
			year: "Seireki 1850",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustConvert(t, tt.date, Japanese)
			if res.Year.Label != tt.year {
				t.Errorf("year = %q, want %q", res.Year.Label, tt.year)
			}
		})
	}
}

func TestJapaneseNativeRendering(t *testing.T) {
	res := mustConvert(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), Japanese)
	if res.YearNative != "令和7年" {
		t.Errorf("yearNative = %q, want 令和7年", res.YearNative)
	}
	if res.FullDateNative != "令和7年6月15日" {
		t.Errorf("fullDateNative = %q, want 令和7年6月15日", res.FullDateNative)
	}
	if res.Month != "June" {
		t.Errorf("month = %q, want June", res.Month)
	}
}
