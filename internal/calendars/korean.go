package calendars

import (
	"fmt"
	"time"
)

// dangiYearOffset converts the lunisolar year count to the Korean Dangi era,
// which reckons from the legendary founding of Gojoseon in 2333 BCE.
const dangiYearOffset = 2333

// koreanDate converts to the Korean Dangi calendar. The month/day structure
// is shared with the Chinese lunisolar engine; only the year era differs.
func koreanDate(t time.Time, _ Options) Result {
	day, monthNum, lunarYear, leap := lunisolarParts(t)
	year := lunarYear + dangiYearOffset

	month := chineseMonthLabels[monthNum-1]
	monthNative := fmt.Sprintf("%d월", monthNum)
	if leap {
		month = "Leap " + month
		monthNative = "윤" + monthNative
	}
	yearNative := fmt.Sprintf("단기 %d년", year)
	fullNative := fmt.Sprintf("%s %s %d일 (음력)", yearNative, monthNative, day)

	return Result{
		Day:            day,
		Month:          month,
		Year:           YearNumber(year),
		FullDate:       fmt.Sprintf("%s %d, Dangi %d", month, day, year),
		FullDateNative: fullNative,
		MonthNative:    monthNative,
		YearNative:     yearNative,
		Holiday:        HolidayFor(Korean, month, day),
		Native: &Native{Lunar: &LunarNative{
			Month:     monthNum,
			Day:       day,
			LeapMonth: leap,
		}},
	}
}
