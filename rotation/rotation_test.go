package rotation_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/reugn/go-rotation/internal/assert"
	"github.com/reugn/go-rotation/rotation"
)

func TestNextRotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		interval  rotation.Interval
		base      int64
		alignment rotation.Alignment
		expected  string
	}{
		{"daily aligned to day", rotation.Daily, unix(2025, time.January, 15, 13, 42, 7), rotation.AlignDay, "2025-01-16 00:00:00"},
		{"weekly aligned to week", rotation.Weekly, unix(2025, time.September, 17, 10, 0, 0), rotation.AlignWeek, "2025-09-22 00:00:00"},
		{"monthly aligned to month", rotation.Monthly, unix(2025, time.January, 31, 9, 0, 0), rotation.AlignMonth, "2025-02-01 00:00:00"},
		{"monthly aligned to day", rotation.Monthly, unix(2025, time.January, 31, 9, 0, 0), rotation.AlignDay, "2025-02-28 00:00:00"},
		{"monthly aligned to day leap", rotation.Monthly, unix(2024, time.January, 31, 9, 0, 0), rotation.AlignDay, "2024-02-29 00:00:00"},
		{"monthly unaligned", rotation.Monthly, unix(2025, time.January, 31, 9, 0, 0), rotation.AlignNone, "2025-02-28 09:00:00"},
		{"yearly aligned to year", rotation.Yearly, unix(2024, time.February, 29, 0, 0, 0), rotation.AlignYear, "2025-01-01 00:00:00"},
		{"yearly unaligned leap day", rotation.Yearly, unix(2024, time.February, 29, 12, 0, 0), rotation.AlignNone, "2025-02-28 12:00:00"},
		{"hourly aligned to hour", rotation.Hourly, unix(2025, time.June, 1, 8, 0, 0), rotation.AlignHour, "2025-06-01 09:00:00"},
		{"minutely aligned to minute", rotation.Minutely, unix(2025, time.June, 1, 8, 0, 59), rotation.AlignMinute, "2025-06-01 08:01:00"},
		{"daily unaligned", rotation.Daily, unix(2025, time.December, 31, 13, 42, 7), rotation.AlignNone, "2026-01-01 13:42:07"},
		{"weekly aligned to day", rotation.Weekly, unix(2025, time.September, 17, 10, 0, 0), rotation.AlignDay, "2025-09-24 00:00:00"},
		{"minutely aligned to year", rotation.Minutely, unix(2025, time.June, 15, 10, 20, 30), rotation.AlignYear, "2025-06-15 10:21:00"},
		{"hourly aligned to year", rotation.Hourly, unix(2025, time.June, 15, 10, 20, 30), rotation.AlignYear, "2025-06-15 11:00:00"},
		{"weekly aligned to month", rotation.Weekly, unix(2025, time.June, 15, 10, 20, 30), rotation.AlignMonth, "2025-06-22 00:00:00"},
		{"monthly aligned to year", rotation.Monthly, unix(2025, time.June, 15, 10, 20, 30), rotation.AlignYear, "2025-07-01 00:00:00"},
	}
	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, show(utc.NextRotation(test.interval, test.base, test.alignment)), test.expected)
		})
	}
}

func TestNextRotationUnknownInterval(t *testing.T) {
	t.Parallel()
	base := unix(2025, time.June, 1, 0, 0, 0)
	assert.Equal(t, utc.NextRotation(rotation.Interval(0), base, rotation.AlignNone), 0)
	assert.Equal(t, utc.NextRotation(rotation.Interval(42), base, rotation.AlignDay), 0)
}

func TestNextRotationAfterBase(t *testing.T) {
	t.Parallel()
	instants := sampleInstants(150)
	for _, interval := range intervals {
		for _, alignment := range alignments {
			for _, base := range instants {
				next := utc.NextRotation(interval, base, alignment)
				if next <= base {
					t.Fatalf("%s/%s: next %s is not after %s", interval, alignment, show(next), show(base))
				}
				aligned := utc.Align(base, alignment)
				if bound := aligned + int64(interval.Duration().Seconds()); interval.Duration() > 0 && bound > base {
					assert.Equal(t, next, bound)
				}
			}
		}
	}
}

func TestAlign(t *testing.T) {
	t.Parallel()
	base := unix(2025, time.September, 17, 10, 11, 12)
	expected := map[rotation.Alignment]string{
		rotation.AlignNone:   "2025-09-17 10:11:12",
		rotation.AlignMinute: "2025-09-17 10:11:00",
		rotation.AlignHour:   "2025-09-17 10:00:00",
		rotation.AlignDay:    "2025-09-17 00:00:00",
		rotation.AlignWeek:   "2025-09-15 00:00:00",
		rotation.AlignMonth:  "2025-09-01 00:00:00",
		rotation.AlignYear:   "2025-01-01 00:00:00",
	}
	for alignment, value := range expected {
		assert.Equal(t, show(utc.Align(base, alignment)), value)
	}
	assert.Equal(t, utc.Align(base, rotation.Alignment(99)), base)
}

func TestAlignIdempotent(t *testing.T) {
	t.Parallel()
	for _, alignment := range alignments {
		for _, instant := range sampleInstants(200) {
			once := utc.Align(instant, alignment)
			assert.Equal(t, utc.Align(once, alignment), once)
			assert.True(t, once <= instant, fmt.Sprintf("%s floors %s above", alignment, show(instant)))
		}
	}
}

func TestIsRotationTime(t *testing.T) {
	t.Parallel()
	last := unix(2025, time.June, 1, 8, 0, 0)
	assert.False(t, utc.IsRotationTime(rotation.Hourly, last, unix(2025, time.June, 1, 8, 59, 59), rotation.AlignHour), "08:59:59")
	assert.True(t, utc.IsRotationTime(rotation.Hourly, last, unix(2025, time.June, 1, 9, 0, 0), rotation.AlignHour), "09:00:00")
	assert.True(t, utc.IsRotationTime(rotation.Hourly, last, unix(2025, time.June, 2, 0, 0, 0), rotation.AlignHour), "next day")

	last = unix(2025, time.January, 31, 9, 0, 0)
	assert.False(t, utc.IsRotationTime(rotation.Monthly, last, unix(2025, time.February, 27, 23, 59, 59), rotation.AlignDay), "before clamp")
	assert.True(t, utc.IsRotationTime(rotation.Monthly, last, unix(2025, time.February, 28, 0, 0, 0), rotation.AlignDay), "clamped")
}

func TestIsRotationTimeMonotone(t *testing.T) {
	t.Parallel()
	for _, interval := range intervals {
		for _, alignment := range alignments {
			last := unix(2025, time.January, 31, 9, 30, 15)
			due := false
			for now := last; now < last+400*86400; now += 3*3600 + 17 {
				current := utc.IsRotationTime(interval, last, now, alignment)
				if due && !current {
					t.Fatalf("%s/%s: not due at %s after being due", interval, alignment, show(now))
				}
				due = current
			}
			assert.True(t, due, fmt.Sprintf("%s/%s never due", interval, alignment))
		}
	}
}

func TestNextRotationDaylightSaving(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available:", err)
	}
	ny := rotation.NewCalendar(loc)

	// clocks move forward at 02:00 on 2025-03-09; a daily step is a
	// fixed 24 hours, so the deadline lands at 01:00 local
	base := time.Date(2025, time.March, 9, 12, 0, 0, 0, loc).Unix()
	next := ny.NextRotation(rotation.Daily, base, rotation.AlignDay)
	assert.Equal(t, next, time.Date(2025, time.March, 10, 1, 0, 0, 0, loc).Unix())

	base = time.Date(2025, time.March, 1, 12, 0, 0, 0, loc).Unix()
	next = ny.NextRotation(rotation.Monthly, base, rotation.AlignMonth)
	assert.Equal(t, next, time.Date(2025, time.April, 1, 0, 0, 0, 0, loc).Unix())
}

func TestDaylightSavingFallBack(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available:", err)
	}
	ny := rotation.NewCalendar(loc)

	// 01:30 local occurs twice on 2025-11-02, first in EDT then in EST
	first := unix(2025, time.November, 2, 5, 30, 0)
	second := unix(2025, time.November, 2, 6, 30, 0)
	for _, instant := range []int64{first, second} {
		assert.Equal(t, ny.AddMonths(instant, 0), instant)
		assert.Equal(t, ny.AddYears(instant, 0), instant)
		assert.Equal(t, ny.Align(instant, rotation.AlignMinute), instant)
		assert.Equal(t, ny.Align(instant, rotation.AlignHour), instant-1800)
		assert.Equal(t, ny.NextRotation(rotation.Minutely, instant, rotation.AlignMinute), instant+60)
	}

	// midnight exists once, in EDT
	midnight := time.Date(2025, time.November, 2, 0, 0, 0, 0, loc).Unix()
	assert.Equal(t, ny.StartOfDay(second), midnight)
	assert.Equal(t, ny.NextRotation(rotation.Daily, second, rotation.AlignDay), midnight+86400)

	// the EDT offset of the source does not apply in November
	base := time.Date(2025, time.October, 15, 12, 0, 0, 0, loc).Unix()
	assert.Equal(t, ny.AddMonths(base, 1), time.Date(2025, time.November, 15, 12, 0, 0, 0, loc).Unix())
}

func TestPackageLevel(t *testing.T) {
	t.Parallel()
	base := time.Date(2025, time.May, 14, 13, 42, 7, 0, time.Local).Unix()
	assert.Equal(t, rotation.Align(base, rotation.AlignHour), rotation.Local().Align(base, rotation.AlignHour))
	assert.Equal(t, rotation.NextRotation(rotation.Daily, base, rotation.AlignDay),
		rotation.Local().NextRotation(rotation.Daily, base, rotation.AlignDay))
	assert.Equal(t, rotation.NextRotation(rotation.Monthly, base, rotation.AlignNone),
		time.Date(2025, time.June, 14, 13, 42, 7, 0, time.Local).Unix())
	assert.False(t, rotation.IsRotationTime(rotation.Yearly, base, base, rotation.AlignYear), "same instant")
}
