package calendars

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed holidays.yaml
var holidaysYAML []byte

// HolidayDef is one civil fixed holiday within a calendar's native year.
// Month is the Latin month label the owning converter emits; there is no
// year field because these holidays recur every native year or cycle.
type HolidayDef struct {
	Month string `yaml:"month"`
	Day   int    `yaml:"day"`
	Name  string `yaml:"name"`
}

// holidayTable is process-wide immutable state: loaded once from the
// embedded registry at startup, never mutated afterwards.
var holidayTable = loadHolidays()

// loadHolidays parses the embedded registry and validates that every key is
// a registered calendar type. The data is compiled into the binary, so a
// parse or validation failure is a build defect and panics at init.
func loadHolidays() map[CalendarType][]HolidayDef {
	raw := make(map[CalendarType][]HolidayDef)
	if err := yaml.Unmarshal(holidaysYAML, &raw); err != nil {
		panic(fmt.Sprintf("calendars: parsing embedded holiday registry: %v", err))
	}
	for typ := range raw {
		if Find(typ) == nil {
			panic(fmt.Sprintf("calendars: holiday registry references unknown calendar %q", typ))
		}
	}
	return raw
}

// HolidayFor returns the holiday name for the given native (type, month, day),
// or the empty string when none is registered. A miss is not an error.
// Month labels compare case-insensitively; converters always query with the
// Latin label, which is the authoring key of the registry.
func HolidayFor(typ CalendarType, month string, day int) string {
	for _, def := range holidayTable[typ] {
		if def.Day == day && strings.EqualFold(def.Month, month) {
			return def.Name
		}
	}
	return ""
}
