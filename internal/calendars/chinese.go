package calendars

import (
	"fmt"
	"time"

	lunarcal "github.com/6tail/lunar-go/calendar"
)

// chineseMonthLabels are the Latin labels for lunisolar months; the holiday
// registry for the Chinese and Korean calendars is authored against these.
var chineseMonthLabels = [12]string{
	"First Month", "Second Month", "Third Month", "Fourth Month",
	"Fifth Month", "Sixth Month", "Seventh Month", "Eighth Month",
	"Ninth Month", "Tenth Month", "Eleventh Month", "Twelfth Month",
}

// chineseMonthNames are the traditional month names (the first, eleventh
// and twelfth months have non-numeric names).
var chineseMonthNames = [12]string{
	"正月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "冬月", "腊月",
}

var (
	heavenlyStems   = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	earthlyBranches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
	chineseDayTens  = [3]string{"初", "十", "廿"}
)

// lunisolarParts resolves the Chinese lunisolar date of an instant. A
// negative month from the underlying engine marks a leap month.
func lunisolarParts(t time.Time) (day, month, year int, leap bool) {
	lunar := lunarcal.NewSolarFromDate(t).GetLunar()
	month = lunar.GetMonth()
	if month < 0 {
		leap = true
		month = -month
	}
	return lunar.GetDay(), month, lunar.GetYear(), leap
}

// ganzhiYear renders a year in the sexagenary stem-branch cycle.
func ganzhiYear(year int) string {
	return heavenlyStems[floorMod(year-4, 10)] + earthlyBranches[floorMod(year-4, 12)]
}

// chineseDayName renders a lunar day number in traditional form
// (初一 through 三十).
func chineseDayName(day int) string {
	switch {
	case day == 10:
		return "初十"
	case day == 20:
		return "二十"
	case day == 30:
		return "三十"
	default:
		return chineseDayTens[(day-1)/10] + chineseDigits[day%10]
	}
}

// chineseDate converts to the Chinese lunisolar calendar.
func chineseDate(t time.Time, _ Options) Result {
	day, monthNum, year, leap := lunisolarParts(t)

	month := chineseMonthLabels[monthNum-1]
	monthNative := chineseMonthNames[monthNum-1]
	if leap {
		month = "Leap " + month
		monthNative = "闰" + monthNative
	}
	yearNative := ganzhiYear(year) + "年"
	fullNative := yearNative + monthNative + chineseDayName(day)

	return Result{
		Day:            day,
		Month:          month,
		Year:           YearNumber(year),
		FullDate:       fmt.Sprintf("%s %d, %d", month, day, year),
		FullDateNative: fullNative,
		MonthNative:    monthNative,
		YearNative:     yearNative,
		Holiday:        HolidayFor(Chinese, month, day),
		Native: &Native{Lunar: &LunarNative{
			Month:     monthNum,
			Day:       day,
			LeapMonth: leap,
		}},
	}
}
