// Package calendars implements the multi-calendar-system date conversion
// engine. Given a Gregorian instant and a target calendar system, it returns
// the native day/month/year of that instant, a composed human-readable
// rendering (Latin and native script where available), auxiliary cycle labels
// for cycle-based systems, and a civil holiday lookup.
//
// Everything in this package is a pure function of its inputs plus a
// process-wide immutable holiday table loaded at startup. There is no shared
// mutable state, so every function is safe for concurrent use.
package calendars

// CalendarType identifies a supported calendar system. The set is closed:
// adding a value requires a converter in the dispatch table and a Registry
// entry, and nothing else accepts arbitrary strings.
type CalendarType string

const (
	Gregorian CalendarType = "gregorian"
	Hijri     CalendarType = "hijri"
	Javanese  CalendarType = "javanese"
	Chinese   CalendarType = "chinese"
	Saka      CalendarType = "saka"
	Balinese  CalendarType = "balinese"
	Hebrew    CalendarType = "hebrew"
	Persian   CalendarType = "persian"
	Buddhist  CalendarType = "buddhist"
	Mayan     CalendarType = "mayan"
	Japanese  CalendarType = "japanese"
	Korean    CalendarType = "korean"
)

// Info holds display metadata about a calendar system. Consumed by the
// /api/v1/calendars endpoint and by clients for labeling.
type Info struct {
	// ID is the machine-readable calendar identifier.
	ID CalendarType `json:"id"`

	// Name is the human-readable display name.
	Name string `json:"name"`

	// Description is a short summary of the system.
	Description string `json:"description"`
}

// Registry returns metadata for every supported calendar system. This is the
// canonical source of truth: the order here is the order of results in the
// all-calendars conversion response.
func Registry() []Info {
	return []Info{
		{
			ID:          Gregorian,
			Name:        "Gregorian",
			Description: "The internationally standard solar calendar.",
		},
		{
			ID:          Hijri,
			Name:        "Hijri (Islamic)",
			Description: "Lunar calendar following the Umm al-Qura civil reckoning.",
		},
		{
			ID:          Javanese,
			Name:        "Javanese",
			Description: "Sultan Agung's lunar calendar with the five-day Pasaran market week.",
		},
		{
			ID:          Chinese,
			Name:        "Chinese",
			Description: "Traditional lunisolar calendar with leap months.",
		},
		{
			ID:          Saka,
			Name:        "Saka (Indian National)",
			Description: "The reformed Indian national solar calendar.",
		},
		{
			ID:          Balinese,
			Name:        "Balinese Pawukon",
			Description: "210-day ritual cycle of coupled 7-day, 5-day and 30-wuku weeks.",
		},
		{
			ID:          Hebrew,
			Name:        "Hebrew",
			Description: "Lunisolar calendar counted from the traditional era of creation.",
		},
		{
			ID:          Persian,
			Name:        "Persian (Solar Hijri)",
			Description: "Solar calendar beginning at the March equinox (Nowruz).",
		},
		{
			ID:          Buddhist,
			Name:        "Buddhist (Thai)",
			Description: "Thai solar calendar counted in the Buddhist Era.",
		},
		{
			ID:          Mayan,
			Name:        "Mayan Long Count",
			Description: "Mixed-radix day count from the Mayan epoch (GMT correlation).",
		},
		{
			ID:          Japanese,
			Name:        "Japanese",
			Description: "Gregorian dates reckoned in imperial era years.",
		},
		{
			ID:          Korean,
			Name:        "Korean (Dangi)",
			Description: "Korean lunisolar calendar counted from the Dangun era.",
		},
	}
}

// Find returns the metadata for a calendar type, or nil if the type is not
// registered. Used by the HTTP layer to validate the type query parameter.
func Find(id CalendarType) *Info {
	for _, info := range Registry() {
		if info.ID == id {
			return &info
		}
	}
	return nil
}
