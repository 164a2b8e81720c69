package rotation

import "fmt"

// Align floors t to the boundary named by a. AlignNone and unknown
// alignments return t unchanged.
func (c *Calendar) Align(t int64, a Alignment) int64 {
	return total(c.align(t, a))
}

// NextRotation returns the first instant after base at which a rotation
// with the given interval fires, once base has been floored by the
// alignment. Monthly and Yearly steps clamp the day of month.
//
// When the alignment is coarser than the interval the step is repeated
// from the aligned instant until it passes base, so the result is always
// strictly after base. An unknown interval yields the epoch.
//
// AlignMonth floors base to the first of its month, so Monthly with
// AlignMonth from 31 January 09:00 gives 1 February 00:00. Use AlignDay
// (28 or 29 February 00:00) or AlignNone (28 or 29 February 09:00) to
// keep the day of month.
func (c *Calendar) NextRotation(i Interval, base int64, a Alignment) int64 {
	return total(c.nextRotation(i, base, a))
}

// IsRotationTime reports whether now is at or past the next rotation
// derived from lastRotation. It is monotone in now.
func (c *Calendar) IsRotationTime(i Interval, lastRotation, now int64, a Alignment) bool {
	return now >= c.NextRotation(i, lastRotation, a)
}

func (c *Calendar) align(t int64, a Alignment) (int64, error) {
	switch a {
	case AlignMinute:
		r, offset, err := c.record(t)
		if err != nil {
			return 0, err
		}
		r.Second = 0
		return c.instant(r, offset)
	case AlignHour:
		r, offset, err := c.record(t)
		if err != nil {
			return 0, err
		}
		r.Minute, r.Second = 0, 0
		return c.instant(r, offset)
	case AlignDay:
		return c.startOfDay(t)
	case AlignWeek:
		return c.startOfWeek(t)
	case AlignMonth:
		return c.startOfMonth(t)
	case AlignYear:
		return c.startOfYear(t)
	default:
		return t, nil
	}
}

func (c *Calendar) nextRotation(i Interval, base int64, a Alignment) (int64, error) {
	anchor, err := c.align(base, a)
	if err != nil {
		return 0, err
	}
	switch i {
	case Minutely, Hourly, Daily, Weekly:
		step := int64(i.Duration().Seconds())
		next := anchor + step
		if next <= base {
			next += ((base-next)/step + 1) * step
		}
		return next, nil
	case Monthly:
		return stepAfter(anchor, base, c.addMonths)
	case Yearly:
		return stepAfter(anchor, base, c.addYears)
	default:
		return 0, illegalArgumentError(fmt.Sprintf("unknown interval %d", int(i)))
	}
}

// stepAfter returns add(anchor, k) for the smallest k >= 1 whose result
// is after base. Each candidate is computed from anchor so that clamping
// does not accumulate.
func stepAfter(anchor, base int64, add func(int64, int) (int64, error)) (int64, error) {
	for k := 1; ; k++ {
		next, err := add(anchor, k)
		if err != nil {
			return 0, err
		}
		if next > base {
			return next, nil
		}
	}
}

// Align floors t to the boundary named by a in local time.
func Align(t int64, a Alignment) int64 {
	return local.Align(t, a)
}

// NextRotation returns the next rotation instant after base in local time.
func NextRotation(i Interval, base int64, a Alignment) int64 {
	return local.NextRotation(i, base, a)
}

// IsRotationTime reports whether a rotation is due at now, given the
// last rotation, in local time.
func IsRotationTime(i Interval, lastRotation, now int64, a Alignment) bool {
	return local.IsRotationTime(i, lastRotation, now, a)
}
