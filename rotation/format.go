package rotation

import (
	"fmt"
	"strings"

	"github.com/ncruces/go-strftime"
)

const invalidTime = "Invalid Time"

// FormatTime renders t using strftime directives such as
// "%Y-%m-%d %H:%M:%S". It returns "Invalid Time" when t cannot be
// converted to a calendar date.
func (c *Calendar) FormatTime(t int64, pattern string) string {
	lt, err := c.localTime(t)
	if err != nil {
		return invalidTime
	}
	return strftime.Format(pattern, lt)
}

// FormatTime renders t in local time using strftime directives.
func FormatTime(t int64, pattern string) string {
	return local.FormatTime(t, pattern)
}

// DescribeDuration returns the distance between a and b, in either
// order, as "N seconds", "M minutes, S seconds", "H hours, M minutes"
// or "D days, H hours". A zero remainder is omitted.
func DescribeDuration(a, b int64) string {
	var d uint64
	if b >= a {
		d = uint64(b - a)
	} else {
		d = uint64(a - b)
	}

	const (
		minute = 60
		hour   = 60 * minute
		day    = 24 * hour
	)
	var sb strings.Builder
	switch {
	case d < minute:
		fmt.Fprintf(&sb, "%d seconds", d)
	case d < hour:
		fmt.Fprintf(&sb, "%d minutes", d/minute)
		if rem := d % minute; rem != 0 {
			fmt.Fprintf(&sb, ", %d seconds", rem)
		}
	case d < day:
		fmt.Fprintf(&sb, "%d hours", d/hour)
		if rem := d % hour / minute; rem != 0 {
			fmt.Fprintf(&sb, ", %d minutes", rem)
		}
	default:
		fmt.Fprintf(&sb, "%d days", d/day)
		if rem := d % day / hour; rem != 0 {
			fmt.Fprintf(&sb, ", %d hours", rem)
		}
	}
	return sb.String()
}
