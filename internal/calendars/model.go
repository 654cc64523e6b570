package calendars

import (
	"encoding/json"
	"strconv"
)

// Result is the universal output shape of a conversion. The day/month/year
// fields always describe the same converted instant as FullDate; the composed
// renderings are never computed from a different source date.
//
// Field semantics vary by system: Day is the Gregorian day-of-month for solar
// calendars but the kin for the Mayan Long Count, and Month holds a cycle
// label ("Dungulan", "Uinal 3") for cycle-based systems.
type Result struct {
	// Type echoes the requested calendar type.
	Type CalendarType `json:"type"`

	// Day is the native day-of-unit number. Not comparable across types.
	Day int `json:"day"`

	// Month is the Latin/English label of the native month or month-like
	// unit. Always a string; holiday lookup keys on this label.
	Month string `json:"month"`

	// Year is the native year: a plain number or a composite era label.
	Year Year `json:"year"`

	// FullDate is the composed human-readable Latin rendering.
	FullDate string `json:"fullDate"`

	// FullDateNative is the same date composed in the calendar's native
	// script or language. Equal to FullDate for systems without one.
	FullDateNative string `json:"fullDateNative,omitempty"`

	// MonthNative and YearNative are independent native renderings of the
	// month and year, used by clients for mixed-script headers.
	MonthNative string `json:"monthNative,omitempty"`
	YearNative  string `json:"yearNative,omitempty"`

	// Cycle is an auxiliary cycle label that is part of the native date
	// identity but fits no other slot (Balinese Saptawara+Pancawara,
	// Javanese Pasaran, Mayan Katun/Tun).
	Cycle string `json:"cycle,omitempty"`

	// Holiday is the registry holiday name for this native date, if any.
	Holiday string `json:"holiday,omitempty"`

	// Native carries converter-specific structured data for calendar
	// families that have more identity than day/month/year can hold.
	Native *Native `json:"native,omitempty"`
}

// Native is a tagged union of per-family structured date data. At most one
// field is set, matching the calendar family of the Result.
type Native struct {
	Lunar     *LunarNative     `json:"lunar,omitempty"`
	Cycle     *CycleNative     `json:"cycle,omitempty"`
	LongCount *LongCountNative `json:"longCount,omitempty"`
}

// LunarNative holds the numeric lunisolar month/day, including leap month
// status, for the Chinese and Korean calendars.
type LunarNative struct {
	Month     int  `json:"month"`
	Day       int  `json:"day"`
	LeapMonth bool `json:"leapMonth"`
}

// CycleNative holds the resolved Balinese Pawukon triad.
type CycleNative struct {
	Saptawara string `json:"saptawara"`
	Pancawara string `json:"pancawara"`
	Wuku      string `json:"wuku"`
	WukuIndex int    `json:"wukuIndex"`
}

// LongCountNative holds the decomposed Mayan Long Count places.
type LongCountNative struct {
	Baktun int `json:"baktun"`
	Katun  int `json:"katun"`
	Tun    int `json:"tun"`
	Uinal  int `json:"uinal"`
	Kin    int `json:"kin"`
}

// Year is a calendar year that serializes either as a plain JSON number
// (Gregorian 2025) or as a composite era string ("BE 2568", "Baktun 13").
// A non-empty Label wins over Number.
type Year struct {
	Number int
	Label  string
}

// YearNumber returns a numeric year.
func YearNumber(n int) Year { return Year{Number: n} }

// YearLabel returns a composite year label.
func YearLabel(s string) Year { return Year{Label: s} }

// String renders the year for composed full-date strings.
func (y Year) String() string {
	if y.Label != "" {
		return y.Label
	}
	return strconv.Itoa(y.Number)
}

// MarshalJSON emits a JSON number for numeric years and a JSON string for
// labeled years, preserving the wire contract of the conversion API.
func (y Year) MarshalJSON() ([]byte, error) {
	if y.Label != "" {
		return json.Marshal(y.Label)
	}
	return json.Marshal(y.Number)
}

// UnmarshalJSON accepts either form.
func (y *Year) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*y = Year{Number: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*y = Year{Label: s}
	return nil
}
