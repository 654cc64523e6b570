package calendars

import (
	"fmt"
	"time"
)

// buddhistEraOffset converts a Gregorian year to the Thai Buddhist Era.
const buddhistEraOffset = 543

var thaiMonths = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// buddhistDate converts to the Thai Buddhist solar calendar: Gregorian
// months with the year counted in the Buddhist Era.
func buddhistDate(t time.Time, _ Options) Result {
	gy, m, d := t.Date()
	year := gy + buddhistEraOffset

	month := localizedMonths["en"][int(m)-1]
	monthNative := thaiMonths[int(m)-1]
	yearNative := "พ.ศ. " + Numeral(Buddhist, year)
	fullNative := fmt.Sprintf("%s %s %s", Numeral(Buddhist, d), monthNative, yearNative)

	return Result{
		Day:            d,
		Month:          month,
		Year:           YearLabel(fmt.Sprintf("BE %d", year)),
		FullDate:       fmt.Sprintf("%s %d, BE %d", month, d, year),
		FullDateNative: fullNative,
		MonthNative:    monthNative,
		YearNative:     yearNative,
		Holiday:        HolidayFor(Buddhist, month, d),
	}
}
