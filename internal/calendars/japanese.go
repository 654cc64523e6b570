package calendars

import (
	"fmt"
	"time"
)

// era is one Japanese imperial era with its first Gregorian day.
type era struct {
	name  string
	kanji string
	start time.Time
}

// eras is ordered newest first; eraFor picks the first era whose start is
// not after the date. Dates before Meiji fall back to the western count.
var eras = []era{
	{"Reiwa", "令和", time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC)},
	{"Heisei", "平成", time.Date(1989, time.January, 8, 0, 0, 0, 0, time.UTC)},
	{"Showa", "昭和", time.Date(1926, time.December, 25, 0, 0, 0, 0, time.UTC)},
	{"Taisho", "大正", time.Date(1912, time.July, 30, 0, 0, 0, 0, time.UTC)},
	{"Meiji", "明治", time.Date(1868, time.October, 23, 0, 0, 0, 0, time.UTC)},
}

// eraFor resolves the era and era-year of a date.
func eraFor(t time.Time) (era, int) {
	for _, e := range eras {
		if !t.Before(e.start) {
			return e, t.Year() - e.start.Year() + 1
		}
	}
	// Pre-Meiji: render the western year under the "Seireki" label.
	return era{name: "Seireki", kanji: "西暦"}, t.Year()
}

// japaneseDate converts to the Japanese calendar: Gregorian months with the
// year reckoned in imperial era years.
func japaneseDate(t time.Time, _ Options) Result {
	_, m, d := t.Date()
	e, eraYear := eraFor(t)

	month := localizedMonths["en"][int(m)-1]
	yearLabel := fmt.Sprintf("%s %d", e.name, eraYear)
	yearNative := fmt.Sprintf("%s%d年", e.kanji, eraYear)
	fullNative := fmt.Sprintf("%s%d月%d日", yearNative, int(m), d)

	return Result{
		Day:            d,
		Month:          month,
		Year:           YearLabel(yearLabel),
		FullDate:       fmt.Sprintf("%s %d, %s", month, d, yearLabel),
		FullDateNative: fullNative,
		MonthNative:    fmt.Sprintf("%d月", int(m)),
		YearNative:     yearNative,
		Holiday:        HolidayFor(Japanese, month, d),
	}
}
