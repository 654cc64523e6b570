// Package convertapi serves the public date conversion REST API. It exposes
// the calendar engine over /api/v1: single and multi calendar conversion,
// the calendar catalog, and native month boundary resolution.
//
// The error bodies of the convert endpoint are a compatibility contract with
// existing clients and are written byte for byte by the handler, bypassing
// the global error handler.
package convertapi

import (
	"time"

	"github.com/sastrawinata/kalenda/internal/calendars"
)

// errorBody is the error envelope of the convert endpoints.
type errorBody struct {
	Error string `json:"error"`
}

// singleResponse wraps a single calendar conversion.
type singleResponse struct {
	Data calendars.Result `json:"data"`
}

// multiMeta describes the source instant of a multi calendar conversion.
type multiMeta struct {
	// SourceDate is the resolved civil date echoed back in RFC 3339 form.
	SourceDate string `json:"sourceDate"`

	// APIVersion is the wire version of the response, currently "v1".
	APIVersion string `json:"apiVersion"`
}

// multiResponse wraps a conversion into every supported calendar. Data is
// ordered like the calendar catalog.
type multiResponse struct {
	Meta multiMeta          `json:"meta"`
	Data []calendars.Result `json:"data"`
}

// boundariesResponse is the payload of the month boundaries endpoint. Start
// and End are the first and last Gregorian day of the native month that
// contains the query date, inclusive.
type boundariesResponse struct {
	Calendar string `json:"calendar"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// dateOnly formats a civil day without the time component.
func dateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
