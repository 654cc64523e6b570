package calendars

import "time"

// boundaryScanLimit caps the outward day scan. Native months are short
// (7-day wuku up to 31-day solar months); the cap only guards against a
// converter that never changes its month label.
const boundaryScanLimit = 400

// MonthBoundaries returns the first and last Gregorian day belonging to the
// same native-calendar month as the given date. Grids render Gregorian day
// cells, so this is what decides which cells the "current native month"
// spans when a non-Gregorian calendar is primary.
//
// The resolver scans outward day by day while the converted month label
// matches the start date's label. O(days in the native month) conversions;
// correctness over performance, and the months are bounded.
func MonthBoundaries(t time.Time, typ CalendarType, opts Options) (start, end time.Time, err error) {
	base, err := Convert(t, typ, opts)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	day := civilUTC(t)
	start, end = day, day

	for i := 0; i < boundaryScanLimit; i++ {
		prev := start.AddDate(0, 0, -1)
		res, err := Convert(prev, typ, opts)
		if err != nil || res.Month != base.Month {
			break
		}
		start = prev
	}
	for i := 0; i < boundaryScanLimit; i++ {
		next := end.AddDate(0, 0, 1)
		res, err := Convert(next, typ, opts)
		if err != nil || res.Month != base.Month {
			break
		}
		end = next
	}
	return start, end, nil
}
