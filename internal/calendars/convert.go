package calendars

import (
	"errors"
	"time"

	"golang.org/x/text/language"
)

// Conversion errors. The engine validates its own inputs rather than relying
// on the HTTP layer, so a zero instant or an unregistered type is rejected
// here instead of propagating NaN-like artifacts into results.
var (
	// ErrInvalidInstant is returned when the input time is the zero value.
	ErrInvalidInstant = errors.New("calendars: invalid instant")

	// ErrUnknownCalendar is returned for a type outside the closed enum.
	ErrUnknownCalendar = errors.New("calendars: unknown calendar type")
)

// Options carries per-call conversion options. The locale tag affects only
// Gregorian month-name localization; all other converters render fixed Latin
// labels plus their own native script.
type Options struct {
	Locale language.Tag
}

// converterFunc converts a UTC-resolved instant into a Result. Converters
// never fail: anomalies degrade to a best-effort rendering instead.
type converterFunc func(t time.Time, opts Options) Result

// converters is the compile-time dispatch table. Every CalendarType in the
// Registry must have exactly one entry here; TestRegistryCoverage enforces
// the invariant. Keeping this a plain map (rather than a switch with a
// default branch) removes any "unknown" sentinel path from conversion.
var converters = map[CalendarType]converterFunc{
	Gregorian: gregorianDate,
	Hijri:     hijriDate,
	Javanese:  javaneseDate,
	Chinese:   chineseDate,
	Saka:      sakaDate,
	Balinese:  balineseDate,
	Hebrew:    hebrewDate,
	Persian:   persianDate,
	Buddhist:  buddhistDate,
	Mayan:     mayanDate,
	Japanese:  japaneseDate,
	Korean:    koreanDate,
}

// Convert converts the given instant into the target calendar system. The
// instant is resolved to its UTC calendar date first, so the same instant
// yields the same result regardless of the process timezone.
func Convert(t time.Time, typ CalendarType, opts Options) (Result, error) {
	if t.IsZero() {
		return Result{}, ErrInvalidInstant
	}
	convert, ok := converters[typ]
	if !ok {
		return Result{}, ErrUnknownCalendar
	}

	res := convert(civilUTC(t), opts)
	res.Type = typ
	return res, nil
}

// civilUTC normalizes an instant to midnight UTC of its UTC calendar date.
// All converters operate on the result, which fixes the historical behavior
// of the Mayan converter depending on the ambient process timezone.
func civilUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// julianDayNumber returns the Julian Day Number of a proleptic Gregorian
// calendar date. Standard integer formula, valid for all dates of interest.
func julianDayNumber(year int, month time.Month, day int) int {
	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnOf is julianDayNumber applied to a UTC-resolved instant.
func jdnOf(t time.Time) int {
	y, m, d := t.UTC().Date()
	return julianDayNumber(y, m, d)
}

// floorMod returns a mod b with the sign of b. Unlike the % operator it is
// correct for negative a, which matters for dates before a cycle anchor.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// floorDiv returns a / b rounded toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
