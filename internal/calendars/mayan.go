package calendars

import (
	"fmt"
	"time"
)

// gmtCorrelation is the Goodman-Martinez-Thompson correlation constant: the
// Julian Day Number of the Long Count epoch 0.0.0.0.0.
const gmtCorrelation = 584283

// Long Count place values: baktun, katun, tun, uinal, kin.
const (
	kinPerBaktun = 144000
	kinPerKatun  = 7200
	kinPerTun    = 360
	kinPerUinal  = 20
)

// longCount decomposes a day count since the Mayan epoch into Long Count
// places. Mixed-radix decomposition with floor division, so dates before
// the epoch produce a negative baktun rather than wrapping.
func longCount(days int) LongCountNative {
	baktun := floorDiv(days, kinPerBaktun)
	days -= baktun * kinPerBaktun
	katun := days / kinPerKatun
	days -= katun * kinPerKatun
	tun := days / kinPerTun
	days -= tun * kinPerTun
	uinal := days / kinPerUinal
	kin := days - uinal*kinPerUinal
	return LongCountNative{Baktun: baktun, Katun: katun, Tun: tun, Uinal: uinal, Kin: kin}
}

// mayanDate converts to the Mayan Long Count. The instant's UTC calendar
// date determines the Julian Day Number; the ambient process timezone never
// shifts the count.
func mayanDate(t time.Time, _ Options) Result {
	days := jdnOf(t) - gmtCorrelation
	lc := longCount(days)

	notation := fmt.Sprintf("%d.%d.%d.%d.%d", lc.Baktun, lc.Katun, lc.Tun, lc.Uinal, lc.Kin)
	month := fmt.Sprintf("Uinal %d", lc.Uinal)
	full := "Long Count " + notation

	return Result{
		Day:            lc.Kin,
		Month:          month,
		Year:           YearLabel(fmt.Sprintf("Baktun %d", lc.Baktun)),
		Cycle:          fmt.Sprintf("Katun %d, Tun %d", lc.Katun, lc.Tun),
		FullDate:       full,
		FullDateNative: full,
		Holiday:        HolidayFor(Mayan, month, lc.Kin),
		Native:         &Native{LongCount: &lc},
	}
}
