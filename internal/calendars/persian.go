package calendars

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

var persianMonths = [12]string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

var persianMonthsNative = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// persianDate converts to the Persian (Solar Hijri) calendar. Month and year
// extraction are delegated to the go-persian-calendar arithmetic; the
// transliterated month label keys the holiday registry.
func persianDate(t time.Time, _ Options) Result {
	pt := ptime.New(t)
	day := pt.Day()
	monthNum := int(pt.Month())
	year := pt.Year()

	month := persianMonths[monthNum-1]
	monthNative := persianMonthsNative[monthNum-1]
	yearNative := Numeral(Persian, year)
	fullNative := fmt.Sprintf("%s %s %s", Numeral(Persian, day), monthNative, yearNative)

	return Result{
		Day:            day,
		Month:          month,
		Year:           YearNumber(year),
		FullDate:       fmt.Sprintf("%d %s %d SH", day, month, year),
		FullDateNative: fullNative,
		MonthNative:    monthNative,
		YearNative:     yearNative,
		Holiday:        HolidayFor(Persian, month, day),
	}
}
