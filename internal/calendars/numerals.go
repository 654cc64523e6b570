package calendars

import (
	"strconv"
	"strings"
)

// Native digit sets, indexed 0-9. Calendars not listed here render plain
// ASCII digits.
var (
	arabicDigits     = []string{"٠", "١", "٢", "٣", "٤", "٥", "٦", "٧", "٨", "٩"}
	persianDigits    = []string{"۰", "۱", "۲", "۳", "۴", "۵", "۶", "۷", "۸", "۹"}
	devanagariDigits = []string{"०", "१", "२", "३", "४", "५", "६", "७", "८", "९"}
	thaiDigits       = []string{"๐", "๑", "๒", "๓", "๔", "๕", "๖", "๗", "๘", "๙"}
	chineseDigits    = []string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
)

// nativeDigits maps a calendar type to its digit set. Hebrew is absent on
// purpose: Hebrew numerals are letter-valued (gematria), not positional, and
// are handled by hebrewNumeral.
var nativeDigits = map[CalendarType][]string{
	Hijri:    arabicDigits,
	Persian:  persianDigits,
	Saka:     devanagariDigits,
	Buddhist: thaiDigits,
	Chinese:  chineseDigits,
}

// Numeral renders a non-negative integer in the native digit script of the
// given calendar type, falling back to ASCII digits for types without one.
func Numeral(typ CalendarType, n int) string {
	digits, ok := nativeDigits[typ]
	if !ok {
		return strconv.Itoa(n)
	}
	ascii := strconv.Itoa(n)
	var b strings.Builder
	for _, r := range ascii {
		if r >= '0' && r <= '9' {
			b.WriteString(digits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// gematria values used for Hebrew numerals, largest first so greedy
// decomposition yields the conventional letter sequence.
var gematria = []struct {
	value  int
	letter string
}{
	{400, "ת"}, {300, "ש"}, {200, "ר"}, {100, "ק"},
	{90, "צ"}, {80, "פ"}, {70, "ע"}, {60, "ס"}, {50, "נ"},
	{40, "מ"}, {30, "ל"}, {20, "כ"}, {10, "י"},
	{9, "ט"}, {8, "ח"}, {7, "ז"}, {6, "ו"}, {5, "ה"},
	{4, "ד"}, {3, "ג"}, {2, "ב"}, {1, "א"},
}

// hebrewNumeral renders a positive integer as a traditional Hebrew letter
// numeral. Thousands are rendered as a leading letter + geresh, the 15/16
// combinations are replaced by ט״ו and ט״ז to avoid spelling the divine
// name, and a gershayim is inserted before the final letter of multi-letter
// numerals, per convention.
func hebrewNumeral(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}

	var b strings.Builder
	if n >= 1000 {
		b.WriteString(hebrewLetters(n / 1000))
		b.WriteString("׳")
		n %= 1000
		if n == 0 {
			return b.String()
		}
	}

	letters := hebrewLetters(n)
	runes := []rune(letters)
	if len(runes) > 1 {
		b.WriteString(string(runes[:len(runes)-1]))
		b.WriteString("״")
		b.WriteString(string(runes[len(runes)-1:]))
	} else {
		b.WriteString(letters)
		b.WriteString("׳")
	}
	return b.String()
}

// hebrewLetters performs the raw greedy decomposition for values 1-999.
func hebrewLetters(n int) string {
	var b strings.Builder
	for _, g := range gematria {
		for n >= g.value {
			// 15 and 16 use 9+6 and 9+7 instead of 10+5 and 10+6.
			if n == 15 {
				b.WriteString("טו")
				n = 0
				break
			}
			if n == 16 {
				b.WriteString("טז")
				n = 0
				break
			}
			b.WriteString(g.letter)
			n -= g.value
		}
	}
	return b.String()
}
