package calendars

import (
	"testing"
	"time"
)

func TestChineseNewYear(t *testing.T) {
	// 29 January 2025 was the first day of the yisi (snake) year.
	res := mustConvert(t, time.Date(2025, time.January, 29, 0, 0, 0, 0, time.UTC), Chinese)

	if res.Day != 1 {
		t.Errorf("day = %d, want 1", res.Day)
	}
	if res.Month != "First Month" {
		t.Errorf("month = %q, want First Month", res.Month)
	}
	if res.Year.Number != 2025 {
		t.Errorf("year = %d, want 2025", res.Year.Number)
	}
	if res.YearNative != "乙巳年" {
		t.Errorf("yearNative = %q, want 乙巳年", res.YearNative)
	}
	if res.MonthNative != "正月" {
		t.Errorf("monthNative = %q, want 正月", res.MonthNative)
	}
	if res.Native == nil || res.Native.Lunar == nil {
		t.Fatal("native lunar data missing")
	}
	if res.Native.Lunar.LeapMonth {
		t.Error("new year must not be a leap month")
	}
}

func TestChineseLeapMonth(t *testing.T) {
	// 22 March 2023 was the first day of the leap second month of 2023.
	res := mustConvert(t, time.Date(2023, time.March, 22, 0, 0, 0, 0, time.UTC), Chinese)

	if res.Native == nil || res.Native.Lunar == nil {
		t.Fatal("native lunar data missing")
	}
	if !res.Native.Lunar.LeapMonth {
		t.Fatal("expected a leap month")
	}
	if res.Native.Lunar.Month != 2 {
		t.Errorf("lunar month = %d, want 2", res.Native.Lunar.Month)
	}
	if res.Month != "Leap Second Month" {
		t.Errorf("month = %q, want Leap Second Month", res.Month)
	}
	if res.MonthNative != "闰二月" {
		t.Errorf("monthNative = %q, want 闰二月", res.MonthNative)
	}
}

func TestKoreanDangiEra(t *testing.T) {
	// Dangi shares the lunisolar structure and adds 2333 to the year.
	instant := time.Date(2025, time.January, 29, 0, 0, 0, 0, time.UTC)
	kr := mustConvert(t, instant, Korean)
	cn := mustConvert(t, instant, Chinese)

	if kr.Year.Number != cn.Year.Number+dangiYearOffset {
		t.Errorf("dangi year = %d, lunisolar year = %d, want offset %d",
			kr.Year.Number, cn.Year.Number, dangiYearOffset)
	}
	if kr.Day != cn.Day || kr.Native.Lunar.Month != cn.Native.Lunar.Month {
		t.Errorf("korean %d/%d and chinese %d/%d structure diverged",
			kr.Native.Lunar.Month, kr.Day, cn.Native.Lunar.Month, cn.Day)
	}
	if kr.YearNative != "단기 4358년" {
		t.Errorf("yearNative = %q, want 단기 4358년", kr.YearNative)
	}
	if kr.MonthNative != "1월" {
		t.Errorf("monthNative = %q, want 1월", kr.MonthNative)
	}
}

func TestKoreanLeapMonthRendering(t *testing.T) {
	res := mustConvert(t, time.Date(2023, time.March, 22, 0, 0, 0, 0, time.UTC), Korean)
	if res.Month != "Leap Second Month" {
		t.Errorf("month = %q, want Leap Second Month", res.Month)
	}
	if res.MonthNative != "윤2월" {
		t.Errorf("monthNative = %q, want 윤2월", res.MonthNative)
	}
}
