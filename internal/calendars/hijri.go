package calendars

import (
	"fmt"
	"time"

	"github.com/hablullah/go-hijri"
)

// hijriMonths are the Latin month labels used for rendering and holiday
// lookup. The registry is authored against these spellings.
var hijriMonths = [12]string{
	"Muharram", "Safar", "Rabi' al-Awwal", "Rabi' al-Thani",
	"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu al-Qi'dah", "Dhu al-Hijjah",
}

var hijriMonthsArabic = [12]string{
	"محرم", "صفر", "ربيع الأول", "ربيع الثاني",
	"جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان",
	"رمضان", "شوال", "ذو القعدة", "ذو الحجة",
}

// hijriParts resolves the Umm al-Qura date of an instant. Outside the range
// covered by the Umm al-Qura tables it degrades to tabular (arithmetic)
// Islamic reckoning instead of failing, so callers always get a usable date.
func hijriParts(t time.Time) (day, month, year int) {
	uq, err := hijri.CreateUmmAlQuraDate(t)
	if err == nil {
		return int(uq.Day), int(uq.Month), int(uq.Year)
	}
	return tabularHijri(jdnOf(t))
}

// tabularHijri converts a Julian Day Number to the arithmetic (tabular)
// Islamic calendar with a 30-year intercalation cycle. Used only as the
// fallback when the civil Umm al-Qura tables do not cover the date.
func tabularHijri(jdn int) (day, month, year int) {
	l := jdn - 1948440 + 10632
	n := floorDiv(l-1, 10631)
	l = l - 10631*n + 354
	j := floorDiv(10985-l, 5316)*floorDiv(50*l, 17719) +
		floorDiv(l, 5670)*floorDiv(43*l, 15238)
	l = l - floorDiv(30-j, 15)*floorDiv(17719*j, 50) -
		floorDiv(j, 16)*floorDiv(15238*j, 43) + 29
	month = floorDiv(24*l, 709)
	day = l - floorDiv(709*month, 24)
	year = 30*n + j - 30
	return day, month, year
}

// hijriDate converts to the Hijri (Islamic) calendar, Umm al-Qura reckoning.
func hijriDate(t time.Time, _ Options) Result {
	day, monthNum, year := hijriParts(t)
	month := hijriMonths[monthNum-1]
	monthNative := hijriMonthsArabic[monthNum-1]
	yearNative := Numeral(Hijri, year) + " هـ"
	fullNative := fmt.Sprintf("%s %s %s", Numeral(Hijri, day), monthNative, yearNative)

	return Result{
		Day:            day,
		Month:          month,
		Year:           YearNumber(year),
		FullDate:       fmt.Sprintf("%d %s %d AH", day, month, year),
		FullDateNative: fullNative,
		MonthNative:    monthNative,
		YearNative:     yearNative,
		Holiday:        HolidayFor(Hijri, month, day),
	}
}
