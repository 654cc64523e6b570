package calendars

import (
	"fmt"
	"time"
)

// Javanese month names follow the Hijri months one-to-one: the Javanese
// calendar has tracked the Islamic lunar months since Sultan Agung's reform,
// with the Anno Javanico year running 512 ahead of the Hijri year.
var javaneseMonths = [12]string{
	"Sura", "Sapar", "Mulud", "Bakda Mulud", "Jumadil Awal", "Jumadil Akhir",
	"Rejeb", "Ruwah", "Pasa", "Sawal", "Sela", "Besar",
}

// pasaranNames is the five-day Javanese market week.
var pasaranNames = [5]string{"Legi", "Pahing", "Pon", "Wage", "Kliwon"}

const (
	// javaneseYearOffset is the Anno Javanico correlation to the Hijri year.
	javaneseYearOffset = 512

	// pasaranAnchorIndex pins 2000-01-01 to Pahing.
	pasaranAnchorIndex = 1
)

// pasaranAnchorJDN is the Julian Day Number of 2000-01-01.
var pasaranAnchorJDN = julianDayNumber(2000, time.January, 1)

// pasaranOf returns the market-week day of an instant by modular offset from
// the anchor; floor modulo keeps dates before the anchor correct.
func pasaranOf(t time.Time) string {
	diff := jdnOf(t) - pasaranAnchorJDN
	return pasaranNames[floorMod(pasaranAnchorIndex+diff, 5)]
}

// javaneseDate converts to the Javanese calendar: lunar month/day/year from
// the Umm al-Qura reckoning plus the solar Pasaran cycle.
func javaneseDate(t time.Time, _ Options) Result {
	day, monthNum, hijriYear := hijriParts(t)
	month := javaneseMonths[monthNum-1]
	year := hijriYear + javaneseYearOffset
	pasaran := pasaranOf(t)

	full := fmt.Sprintf("%s, %d %s %d AJ", pasaran, day, month, year)
	return Result{
		Day:            day,
		Month:          month,
		Year:           YearNumber(year),
		Cycle:          pasaran,
		FullDate:       full,
		FullDateNative: full,
		Holiday:        HolidayFor(Javanese, month, day),
	}
}
