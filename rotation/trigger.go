package rotation

import (
	"fmt"
	"math"
	"time"

	"github.com/gorhill/cronexpr"
)

// Trigger computes rotation deadlines for a rotation driver.
// Times are Unix nanoseconds.
type Trigger interface {
	// NextFireTime returns the next deadline after prev.
	NextFireTime(prev int64) (int64, error)

	// Description returns the description of the Trigger.
	Description() string
}

// IsDue reports whether a rotation is due at now given the last rotation,
// both in seconds since the epoch.
func IsDue(trigger Trigger, lastRotation, now int64) (bool, error) {
	if lastRotation > math.MaxInt64/int64(time.Second) || lastRotation < math.MinInt64/int64(time.Second) {
		return false, illegalArgumentError(fmt.Sprintf("instant %d overflows nanoseconds", lastRotation))
	}
	next, err := trigger.NextFireTime(lastRotation * int64(time.Second))
	if err != nil {
		return false, err
	}
	return now >= floorSeconds(next), nil
}

// RotationTrigger fires at the deadlines of an Interval and Alignment pair.
type RotationTrigger struct {
	calendar  *Calendar
	interval  Interval
	alignment Alignment
}

// Verify RotationTrigger satisfies the Trigger interface.
var _ Trigger = (*RotationTrigger)(nil)

// NewRotationTrigger returns a new RotationTrigger. A nil calendar means
// the host local time zone.
func NewRotationTrigger(cal *Calendar, interval Interval, alignment Alignment) (*RotationTrigger, error) {
	if !interval.Valid() {
		return nil, illegalArgumentError(fmt.Sprintf("unknown interval %d", int(interval)))
	}
	if !alignment.Valid() {
		return nil, illegalArgumentError(fmt.Sprintf("unknown alignment %d", int(alignment)))
	}
	if cal == nil {
		cal = local
	}
	return &RotationTrigger{
		calendar:  cal,
		interval:  interval,
		alignment: alignment,
	}, nil
}

// NextFireTime returns the next rotation deadline after prev.
// Fractional seconds of prev are discarded.
func (rt *RotationTrigger) NextFireTime(prev int64) (int64, error) {
	next, err := rt.Next(floorSeconds(prev))
	if err != nil {
		return 0, err
	}
	if next > math.MaxInt64/int64(time.Second) || next < math.MinInt64/int64(time.Second) {
		return 0, timeConversionError(fmt.Sprintf("instant %d overflows nanoseconds", next))
	}
	return next * int64(time.Second), nil
}

// Next returns the next rotation deadline after base, in seconds.
func (rt *RotationTrigger) Next(base int64) (int64, error) {
	return rt.calendar.nextRotation(rt.interval, base, rt.alignment)
}

// Due reports whether a rotation is due at now given the last rotation,
// both in seconds.
func (rt *RotationTrigger) Due(lastRotation, now int64) (bool, error) {
	next, err := rt.Next(lastRotation)
	if err != nil {
		return false, err
	}
	return now >= next, nil
}

// Description returns the description of the RotationTrigger.
func (rt *RotationTrigger) Description() string {
	return fmt.Sprintf("RotationTrigger: %s, aligned to %s (%s)",
		rt.interval, rt.alignment, rt.calendar.loc)
}

// CronTrigger fires at the matches of a cron expression. Use it for
// cadences the rotation intervals cannot express, e.g. "30 2 * * 1-5".
type CronTrigger struct {
	expression string
	expr       *cronexpr.Expression
	location   *time.Location
}

// Verify CronTrigger satisfies the Trigger interface.
var _ Trigger = (*CronTrigger)(nil)

// NewCronTrigger returns a new CronTrigger evaluated in UTC.
func NewCronTrigger(expression string) (*CronTrigger, error) {
	return NewCronTriggerWithLoc(expression, time.UTC)
}

// NewCronTriggerWithLoc returns a new CronTrigger evaluated in the given
// location. The expression has 5 fields (minute to day of week), 6 (a
// trailing year) or 7 (a leading second and a trailing year), or is one
// of the @yearly, @monthly, @weekly, @daily and @hourly shortcuts.
func NewCronTriggerWithLoc(expression string, location *time.Location) (*CronTrigger, error) {
	if location == nil {
		return nil, illegalArgumentError("location is nil")
	}
	expr, err := cronexpr.Parse(expression)
	if err != nil {
		return nil, cronParseError(err.Error())
	}
	return &CronTrigger{
		expression: expression,
		expr:       expr,
		location:   location,
	}, nil
}

// NextFireTime returns the first match of the expression after prev.
func (ct *CronTrigger) NextFireTime(prev int64) (int64, error) {
	next := ct.expr.Next(time.Unix(0, prev).In(ct.location))
	if next.IsZero() {
		return 0, ErrTriggerExpired
	}
	return next.UnixNano(), nil
}

// Description returns the description of the CronTrigger.
func (ct *CronTrigger) Description() string {
	return fmt.Sprintf("CronTrigger: %s (%s)", ct.expression, ct.location)
}

func floorSeconds(nanos int64) int64 {
	s := nanos / int64(time.Second)
	if nanos%int64(time.Second) < 0 {
		s--
	}
	return s
}
