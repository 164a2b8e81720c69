package rotation

import (
	"fmt"
	"strings"
	"time"
)

// Interval is the cadence at which rotations fire.
type Interval int

// Rotation intervals. The zero value is not a valid Interval.
const (
	Minutely Interval = iota + 1
	Hourly
	Daily
	Weekly
	Monthly
	Yearly
)

var intervalNames = map[Interval]string{
	Minutely: "minutely",
	Hourly:   "hourly",
	Daily:    "daily",
	Weekly:   "weekly",
	Monthly:  "monthly",
	Yearly:   "yearly",
}

var intervalDescriptions = map[Interval]string{
	Minutely: "Every minute",
	Hourly:   "Every hour",
	Daily:    "Every day",
	Weekly:   "Every week",
	Monthly:  "Every month",
	Yearly:   "Every year",
}

// ParseInterval returns the Interval with the given case-insensitive
// name, e.g. "daily".
func ParseInterval(name string) (Interval, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, n := range intervalNames {
		if n == lower {
			return i, nil
		}
	}
	return 0, illegalArgumentError(fmt.Sprintf("unknown interval %q", name))
}

// Valid reports whether i is one of the defined intervals.
func (i Interval) Valid() bool {
	_, ok := intervalNames[i]
	return ok
}

// String returns the lower-case name of the interval.
func (i Interval) String() string {
	if name, ok := intervalNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Interval(%d)", int(i))
}

// Duration returns the fixed step of a sub-monthly interval. Monthly,
// Yearly and unknown intervals have no fixed length and return 0.
func (i Interval) Duration() time.Duration {
	switch i {
	case Minutely:
		return time.Minute
	case Hourly:
		return time.Hour
	case Daily:
		return 24 * time.Hour
	case Weekly:
		return 7 * 24 * time.Hour
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (i Interval) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, illegalArgumentError(fmt.Sprintf("unknown interval %d", int(i)))
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interval) UnmarshalText(text []byte) error {
	parsed, err := ParseInterval(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// DescribeInterval returns an English phrase for the interval, such as
// "Every day", or "Unknown interval".
func DescribeInterval(i Interval) string {
	if description, ok := intervalDescriptions[i]; ok {
		return description
	}
	return "Unknown interval"
}
