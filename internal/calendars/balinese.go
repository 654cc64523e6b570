package calendars

import (
	"fmt"
	"time"
)

// Balinese Pawukon cycle names. The saptawara follows the seven-day week
// starting on Redite (Sunday); each wuku is one saptawara week, and thirty
// wuku make the full 210-day Pawukon.
var (
	saptawaraNames = [7]string{
		"Redite", "Soma", "Anggara", "Buda", "Wraspati", "Sukra", "Saniscara",
	}
	pancawaraNames = [5]string{"Umanis", "Paing", "Pon", "Wage", "Kliwon"}
	wukuNames      = [30]string{
		"Sinta", "Landep", "Ukir", "Kulantir", "Tolu", "Gumbreg",
		"Wariga", "Warigadean", "Julungwangi", "Sungsang", "Dungulan",
		"Kuningan", "Langkir", "Medangsia", "Pujut", "Pahang", "Krulut",
		"Merakih", "Tambir", "Medangkungan", "Matal", "Uye", "Menail",
		"Prangbakat", "Bala", "Ugu", "Wayang", "Klawu", "Dukut", "Watugunung",
	}
)

// Pawukon anchor: 2024-02-28 was Buda (saptawara 3), Kliwon (pancawara 4),
// in wuku Dungulan (index 10). That day was Galungan.
const (
	anchorSaptawara = 3
	anchorPancawara = 4
	anchorWuku      = 10
)

var pawukonAnchorJDN = julianDayNumber(2024, time.February, 28)

// balineseDate converts to the Balinese Pawukon cycle calendar. All three
// cycles are modular offsets from the anchor; the wuku offset is shifted by
// the anchor's saptawara index before dividing by 7 because wuku weeks start
// on Redite while the anchor falls mid-week.
func balineseDate(t time.Time, _ Options) Result {
	diff := jdnOf(t) - pawukonAnchorJDN

	saptawara := saptawaraNames[floorMod(anchorSaptawara+diff, 7)]
	pancawara := pancawaraNames[floorMod(anchorPancawara+diff, 5)]

	wukuIdx := floorMod(anchorWuku+floorDiv(diff+anchorSaptawara, 7), 30)
	wuku := wukuNames[wukuIdx]

	// Day within the wuku week, 1 (Redite) through 7 (Saniscara).
	day := floorMod(diff+anchorSaptawara, 7) + 1

	year := t.Year() - 78
	cycle := saptawara + " " + pancawara
	full := fmt.Sprintf("%s %s, Wuku %s, Saka %d", saptawara, pancawara, wuku, year)

	return Result{
		Day:            day,
		Month:          wuku,
		Year:           YearNumber(year),
		Cycle:          cycle,
		FullDate:       full,
		FullDateNative: full,
		Holiday:        HolidayFor(Balinese, wuku, day),
		Native: &Native{Cycle: &CycleNative{
			Saptawara: saptawara,
			Pancawara: pancawara,
			Wuku:      wuku,
			WukuIndex: wukuIdx,
		}},
	}
}
