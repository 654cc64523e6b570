package calendars

import (
	"fmt"
	"time"

	"github.com/hebcal/hdate"
)

// hebrewDate converts to the Hebrew calendar. Month and year extraction are
// delegated to the hdate arithmetic; the English month label keys the
// holiday registry while the Hebrew rendering uses the native month name
// and a gematria year numeral.
func hebrewDate(t time.Time, _ Options) Result {
	y, m, d := t.Date()
	hd := hdate.FromGregorian(y, m, d)

	day := hd.Day()
	month := hd.MonthName("en")
	monthNative := hd.MonthName("he")
	year := hd.Year()
	yearNative := hebrewNumeral(year)
	fullNative := fmt.Sprintf("%s %s %s", hebrewNumeral(day), monthNative, yearNative)

	return Result{
		Day:            day,
		Month:          month,
		Year:           YearNumber(year),
		FullDate:       fmt.Sprintf("%d %s %d", day, month, year),
		FullDateNative: fullNative,
		MonthNative:    monthNative,
		YearNative:     yearNative,
		Holiday:        HolidayFor(Hebrew, month, day),
	}
}
