package convertapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"

	"github.com/sastrawinata/kalenda/internal/calendars"
	"github.com/sastrawinata/kalenda/internal/config"
)

// dateFormats are the accepted layouts of the ?date= parameter, tried in
// order. Clients send full RFC 3339 timestamps, naive timestamps, or bare
// civil dates.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Handler serves the conversion API endpoints. Stateless apart from the
// optional response cache.
type Handler struct {
	cache         *Cache
	defaultLocale language.Tag
}

// New creates the conversion API handler. rdb may be nil, in which case
// responses are computed on every request.
func New(rdb *redis.Client, cfg *config.Config) *Handler {
	locale, err := language.Parse(cfg.DefaultLocale)
	if err != nil {
		locale = language.English
	}
	return &Handler{
		cache:         NewCache(rdb, cfg.Cache.TTL),
		defaultLocale: locale,
	}
}

// Convert converts a date into one calendar (?type= given) or all of them.
// GET /api/v1/convert?date=2025-12-25&type=hijri&locale=en
//
// The three 400 bodies below are a wire contract; do not reword them.
func (h *Handler) Convert(c echo.Context) error {
	rawDate := c.QueryParam("date")
	if rawDate == "" {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "Missing date parameter"})
	}

	t, err := parseDate(rawDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "Invalid date format"})
	}

	rawType := c.QueryParam("type")
	if rawType != "" && calendars.Find(calendars.CalendarType(rawType)) == nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "Invalid calendar type"})
	}

	rawLocale := c.QueryParam("locale")
	opts := calendars.Options{Locale: h.resolveLocale(rawLocale)}

	// Conversions are pure, so a cached response body can be replayed as is.
	ctx := c.Request().Context()
	cacheKey := conversionKey(rawDate, rawType, opts.Locale.String())
	if body, ok := h.cache.Get(ctx, cacheKey); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	var payload any
	if rawType != "" {
		res, err := calendars.Convert(t, calendars.CalendarType(rawType), opts)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorBody{Error: "Invalid calendar type"})
		}
		payload = singleResponse{Data: res}
	} else {
		all := make([]calendars.Result, 0, len(calendars.Registry()))
		for _, info := range calendars.Registry() {
			res, err := calendars.Convert(t, calendars.CalendarType(info.ID), opts)
			if err != nil {
				return err
			}
			all = append(all, res)
		}
		payload = multiResponse{
			Meta: multiMeta{
				SourceDate: t.UTC().Format(time.RFC3339),
				APIVersion: "v1",
			},
			Data: all,
		}
	}

	h.cache.Set(ctx, cacheKey, payload)
	return c.JSON(http.StatusOK, payload)
}

// ListCalendars returns the catalog of supported calendar systems.
// GET /api/v1/calendars
func (h *Handler) ListCalendars(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"data": calendars.Registry(),
	})
}

// Boundaries returns the Gregorian span of the native month containing the
// query date. Grids use this to shade the primary calendar's current month.
// GET /api/v1/convert/boundaries?date=2025-12-25&type=javanese
func (h *Handler) Boundaries(c echo.Context) error {
	rawDate := c.QueryParam("date")
	if rawDate == "" {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "Missing date parameter"})
	}

	t, err := parseDate(rawDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "Invalid date format"})
	}

	rawType := c.QueryParam("type")
	if rawType == "" || calendars.Find(calendars.CalendarType(rawType)) == nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "Invalid calendar type"})
	}

	opts := calendars.Options{Locale: h.resolveLocale(c.QueryParam("locale"))}
	start, end, err := calendars.MonthBoundaries(t, calendars.CalendarType(rawType), opts)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "Invalid calendar type"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": boundariesResponse{
			Calendar: rawType,
			Start:    dateOnly(start),
			End:      dateOnly(end),
		},
	})
}

// resolveLocale parses the ?locale= parameter, falling back to the
// configured default for empty or malformed tags.
func (h *Handler) resolveLocale(raw string) language.Tag {
	if raw == "" {
		return h.defaultLocale
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return h.defaultLocale
	}
	return tag
}

// parseDate parses the ?date= parameter against the accepted layouts.
func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateFormats {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
