package calendars

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// localizedMonths holds Gregorian month names for the locale bases the
// engine knows how to render. The locale option is advisory: unknown bases
// fall back to English.
var localizedMonths = map[string][12]string{
	"en": {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	"id": {
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	},
}

// gregorianMonthName returns the month name for the given locale tag,
// defaulting to English.
func gregorianMonthName(m time.Month, locale language.Tag) string {
	if base, conf := locale.Base(); conf != language.No {
		if names, ok := localizedMonths[base.String()]; ok {
			return names[int(m)-1]
		}
	}
	return localizedMonths["en"][int(m)-1]
}

// gregorianDate converts to the Gregorian calendar itself. The Latin side is
// always English so holiday lookup keys stay stable; the locale option only
// affects the localized rendering.
func gregorianDate(t time.Time, opts Options) Result {
	y, m, d := t.Date()

	month := localizedMonths["en"][int(m)-1]
	localized := fmt.Sprintf("%d %s %d", d, gregorianMonthName(m, opts.Locale), y)

	return Result{
		Day:            d,
		Month:          month,
		Year:           YearNumber(y),
		FullDate:       fmt.Sprintf("%s %d, %d", month, d, y),
		FullDateNative: localized,
		Holiday:        HolidayFor(Gregorian, month, d),
	}
}
