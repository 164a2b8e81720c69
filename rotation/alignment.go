package rotation

import (
	"fmt"
	"strings"
)

// Alignment is the calendar boundary a base instant is floored to before
// the next rotation is computed.
type Alignment int

// Alignment policies. The zero value AlignNone leaves instants unchanged.
const (
	AlignNone Alignment = iota
	AlignMinute
	AlignHour
	AlignDay
	AlignWeek
	AlignMonth
	AlignYear
)

var alignmentNames = map[Alignment]string{
	AlignNone:   "none",
	AlignMinute: "minute",
	AlignHour:   "hour",
	AlignDay:    "day",
	AlignWeek:   "week",
	AlignMonth:  "month",
	AlignYear:   "year",
}

// ParseAlignment returns the Alignment with the given case-insensitive
// name, e.g. "week". The empty string is AlignNone.
func ParseAlignment(name string) (Alignment, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return AlignNone, nil
	}
	for a, n := range alignmentNames {
		if n == lower {
			return a, nil
		}
	}
	return 0, illegalArgumentError(fmt.Sprintf("unknown alignment %q", name))
}

// Valid reports whether a is one of the defined alignments.
func (a Alignment) Valid() bool {
	_, ok := alignmentNames[a]
	return ok
}

// String returns the lower-case name of the alignment.
func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, illegalArgumentError(fmt.Sprintf("unknown alignment %d", int(a)))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	parsed, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// boundary returns the alignment matching the interval's own calendar
// boundary, e.g. AlignDay for Daily.
func boundary(i Interval) (Alignment, bool) {
	switch i {
	case Minutely:
		return AlignMinute, true
	case Hourly:
		return AlignHour, true
	case Daily:
		return AlignDay, true
	case Weekly:
		return AlignWeek, true
	case Monthly:
		return AlignMonth, true
	case Yearly:
		return AlignYear, true
	}
	return AlignNone, false
}
