package rotation

import (
	"fmt"
	"time"

	"github.com/reugn/go-rotation/internal/calendar"
	"github.com/reugn/go-rotation/logger"
)

// Supported years. Instants whose local date falls outside this range
// fail to convert.
const (
	minYear = 1
	maxYear = 9999
)

// Instants far enough outside the supported years to be rejected before
// asking the time package for a date. The margin covers any zone offset.
const (
	minInstant = -62135596800 - 86400 // 0001-01-01T00:00:00Z minus a day
	maxInstant = 253402300799 + 86400 // 9999-12-31T23:59:59Z plus a day
)

// Calendar binds the rotation operations to a time zone. A Calendar is
// immutable and safe for concurrent use.
type Calendar struct {
	loc *time.Location
}

// local is the Calendar behind the package-level functions.
var local = &Calendar{loc: time.Local}

// NewCalendar returns a Calendar interpreting instants in loc.
// A nil loc means time.Local.
func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{loc: loc}
}

// Local returns the Calendar for the host local time zone.
func Local() *Calendar {
	return local
}

// Location returns the time zone of the Calendar.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// localTime converts the instant t to wall-clock time in the Calendar
// location.
func (c *Calendar) localTime(t int64) (time.Time, error) {
	if t < minInstant || t > maxInstant {
		return time.Time{}, timeConversionError(fmt.Sprintf("instant %d out of range", t))
	}
	lt := time.Unix(t, 0).In(c.loc)
	if year := lt.Year(); year < minYear || year > maxYear {
		return time.Time{}, timeConversionError(fmt.Sprintf("instant %d: year %d out of range", t, year))
	}
	return lt, nil
}

// record breaks t down into a calendar record and returns it with the
// UTC offset in effect at t. On failure it returns the epoch record.
func (c *Calendar) record(t int64) (calendar.Record, int, error) {
	lt, err := c.localTime(t)
	if err != nil {
		return calendar.Epoch(), 0, err
	}
	_, offset := lt.Zone()
	return calendar.Record{
		Year:   lt.Year(),
		Month:  int(lt.Month()),
		Day:    lt.Day(),
		Hour:   lt.Hour(),
		Minute: lt.Minute(),
		Second: lt.Second(),
		// time.Weekday counts from Sunday=0
		Weekday: (int(lt.Weekday())+6)%7 + 1,
	}, offset, nil
}

// instant normalizes r and renders it back to seconds since the epoch.
// A wall clock that occurs twice in the Calendar location, at a
// daylight saving fall-back, resolves to the occurrence with the given
// UTC offset when it has one. On failure it returns the epoch.
func (c *Calendar) instant(r calendar.Record, offset int) (int64, error) {
	r = calendar.Normalize(r)
	if r.Year < minYear || r.Year > maxYear {
		return 0, timeConversionError(fmt.Sprintf("record %s out of range", r))
	}
	hinted := time.Date(r.Year, time.Month(r.Month), r.Day,
		r.Hour, r.Minute, r.Second, 0, time.FixedZone("", offset))
	if sameWallClock(hinted.In(c.loc), r) {
		return hinted.Unix(), nil
	}
	return time.Date(r.Year, time.Month(r.Month), r.Day,
		r.Hour, r.Minute, r.Second, 0, c.loc).Unix(), nil
}

func sameWallClock(lt time.Time, r calendar.Record) bool {
	return lt.Year() == r.Year && int(lt.Month()) == r.Month && lt.Day() == r.Day &&
		lt.Hour() == r.Hour && lt.Minute() == r.Minute && lt.Second() == r.Second
}

// total absorbs a failed computation into the epoch.
func total(t int64, err error) int64 {
	if err != nil {
		logger.Warn("rotation: falling back to epoch", "error", err)
		return 0
	}
	return t
}
