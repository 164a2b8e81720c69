/*
Package rotation computes calendar-aware deadlines for time-driven
rotation (log files, archives, key material).

A rotation policy pairs an Interval, the cadence at which rotations fire,
with an Alignment, the calendar boundary the base instant is floored to
before stepping:

	// next local midnight after the last rotation
	next := rotation.NextRotation(rotation.Daily, last, rotation.AlignDay)

	if rotation.IsRotationTime(rotation.Daily, last, now, rotation.AlignDay) {
		// rotate
	}

Instants are whole seconds since the Unix epoch. Sub-day intervals step
by a fixed number of seconds. Monthly and Yearly step in calendar terms
and clamp the day of month, so 31 January plus one month is the last day
of February and 29 February plus one year is 28 February.

Package-level functions interpret instants in the host local time zone.
Use NewCalendar to bind the same operations to another location:

	utc := rotation.NewCalendar(time.UTC)
	utc.StartOfWeek(t) // Monday 00:00:00 UTC

Minutely, Hourly, Daily and Weekly step by fixed seconds, so a deadline
whose interval crosses a daylight saving transition lands one hour off
the aligned wall clock (a daily rotation at 01:00 instead of midnight).
Calendar steps keep the wall clock and pick up the new offset. A wall
clock that occurs twice at a fall-back keeps the offset of the source
instant when it can.

Every calendar operation is total. When an instant cannot be converted
to a calendar date (years outside 1-9999) the result is the epoch and a
warning is written to the default logger. Use a Trigger to observe such
failures as errors instead.
*/
package rotation
