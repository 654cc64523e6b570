package calendars

import (
	"fmt"
	"time"
)

var sakaMonths = [12]string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha", "Shravana", "Bhadrapada",
	"Ashvina", "Kartika", "Agrahayana", "Pausha", "Magha", "Phalguna",
}

var sakaMonthsDevanagari = [12]string{
	"चैत्र", "वैशाख", "ज्येष्ठ", "आषाढ", "श्रावण", "भाद्रपद",
	"आश्विन", "कार्तिक", "अग्रहायण", "पौष", "माघ", "फाल्गुन",
}

// sakaNewYearDOY is the Gregorian day-of-year of 1 Chaitra. The civil rule
// places it on 22 March, or 21 March in Gregorian leap years; both fall on
// day-of-year 81.
const sakaNewYearDOY = 81

func isGregorianLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// sakaDate converts to the Indian national (Saka) calendar using the civil
// reformed scheme: Chaitra has 30 days (31 in leap years), months 2-6 have
// 31 days and months 7-12 have 30.
func sakaDate(t time.Time, _ Options) Result {
	gy := t.Year()
	doy := t.YearDay()

	var year, daysInto int
	var leap bool
	if doy >= sakaNewYearDOY {
		year = gy - 78
		daysInto = doy - sakaNewYearDOY
		leap = isGregorianLeap(gy)
	} else {
		// Before 1 Chaitra: still in the Saka year that began last March.
		year = gy - 79
		prevLen := 365
		if isGregorianLeap(gy - 1) {
			prevLen = 366
		}
		daysInto = doy - sakaNewYearDOY + prevLen
		leap = isGregorianLeap(gy - 1)
	}

	chaitraLen := 30
	if leap {
		chaitraLen = 31
	}
	lengths := [12]int{chaitraLen, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 30}

	monthIdx := 0
	for daysInto >= lengths[monthIdx] {
		daysInto -= lengths[monthIdx]
		monthIdx++
	}
	day := daysInto + 1

	month := sakaMonths[monthIdx]
	monthNative := sakaMonthsDevanagari[monthIdx]
	yearNative := Numeral(Saka, year)
	fullNative := fmt.Sprintf("%s %s %s शक", Numeral(Saka, day), monthNative, yearNative)

	return Result{
		Day:            day,
		Month:          month,
		Year:           YearNumber(year),
		FullDate:       fmt.Sprintf("%d %s %d Saka", day, month, year),
		FullDateNative: fullNative,
		MonthNative:    monthNative,
		YearNative:     yearNative,
		Holiday:        HolidayFor(Saka, month, day),
	}
}
