package rotation

import "github.com/reugn/go-rotation/internal/calendar"

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return calendar.IsLeap(year)
}

// DaysInMonth returns the number of days in month (1-12) of year, or 0
// if month is out of range.
func DaysInMonth(year, month int) int {
	return calendar.DaysInMonth(year, month)
}

// StartOfDay returns local midnight of the day containing t.
func (c *Calendar) StartOfDay(t int64) int64 {
	return total(c.startOfDay(t))
}

// StartOfWeek returns 00:00:00 on the Monday of the week containing t.
func (c *Calendar) StartOfWeek(t int64) int64 {
	return total(c.startOfWeek(t))
}

// StartOfMonth returns 00:00:00 on the first day of the month
// containing t.
func (c *Calendar) StartOfMonth(t int64) int64 {
	return total(c.startOfMonth(t))
}

// StartOfYear returns 00:00:00 on 1 January of the year containing t.
func (c *Calendar) StartOfYear(t int64) int64 {
	return total(c.startOfYear(t))
}

// AddMonths adds n calendar months to t, which may be negative. A day of
// month missing from the target month is clamped to its last day, so
// 31 January plus one month is 28 or 29 February. The time of day is
// preserved.
func (c *Calendar) AddMonths(t int64, n int) int64 {
	return total(c.addMonths(t, n))
}

// AddYears adds n calendar years to t. 29 February maps to 28 February
// in non-leap target years. The time of day is preserved.
func (c *Calendar) AddYears(t int64, n int) int64 {
	return total(c.addYears(t, n))
}

func (c *Calendar) startOfDay(t int64) (int64, error) {
	r, offset, err := c.record(t)
	if err != nil {
		return 0, err
	}
	return c.instant(midnight(r), offset)
}

func (c *Calendar) startOfWeek(t int64) (int64, error) {
	r, offset, err := c.record(t)
	if err != nil {
		return 0, err
	}
	r = midnight(r)
	r.Day -= r.Weekday - 1
	return c.instant(r, offset)
}

func (c *Calendar) startOfMonth(t int64) (int64, error) {
	r, offset, err := c.record(t)
	if err != nil {
		return 0, err
	}
	r = midnight(r)
	r.Day = 1
	return c.instant(r, offset)
}

func (c *Calendar) startOfYear(t int64) (int64, error) {
	r, offset, err := c.record(t)
	if err != nil {
		return 0, err
	}
	r = midnight(r)
	r.Month, r.Day = 1, 1
	return c.instant(r, offset)
}

func (c *Calendar) addMonths(t int64, n int) (int64, error) {
	r, offset, err := c.record(t)
	if err != nil {
		return 0, err
	}
	r.Year, r.Month = calendar.CarryMonth(r.Year, r.Month+n)
	return c.instant(clampDay(r), offset)
}

func (c *Calendar) addYears(t int64, n int) (int64, error) {
	r, offset, err := c.record(t)
	if err != nil {
		return 0, err
	}
	r.Year += n
	return c.instant(clampDay(r), offset)
}

func midnight(r calendar.Record) calendar.Record {
	r.Hour, r.Minute, r.Second = 0, 0, 0
	return r
}

// clampDay expects r.Month in 1-12.
func clampDay(r calendar.Record) calendar.Record {
	if limit := calendar.DaysInMonth(r.Year, r.Month); r.Day > limit {
		r.Day = limit
	}
	return r
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t int64) int64 { return local.StartOfDay(t) }

// StartOfWeek returns local 00:00:00 on the Monday of the week containing t.
func StartOfWeek(t int64) int64 { return local.StartOfWeek(t) }

// StartOfMonth returns local 00:00:00 on the first of the month containing t.
func StartOfMonth(t int64) int64 { return local.StartOfMonth(t) }

// StartOfYear returns local 00:00:00 on 1 January of the year containing t.
func StartOfYear(t int64) int64 { return local.StartOfYear(t) }

// AddMonths adds n months to t in local time, clamping the day of month.
func AddMonths(t int64, n int) int64 { return local.AddMonths(t, n) }

// AddYears adds n years to t in local time, clamping 29 February.
func AddYears(t int64, n int) int64 { return local.AddYears(t, n) }
