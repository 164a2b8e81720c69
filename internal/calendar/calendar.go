package calendar

import "fmt"

// Record is a broken-down calendar time.
type Record struct {
	Year    int
	Month   int // 1-12
	Day     int // 1-31
	Hour    int // 0-23
	Minute  int // 0-59
	Second  int // 0-59
	Weekday int // 1 (Monday) - 7 (Sunday), derived
}

const (
	// daysPer400Years is the length of a full Gregorian cycle.
	daysPer400Years = 400*365 + 97

	// daysFromYear0ToEpoch is the number of days from 0000-03-01
	// to 1970-01-01.
	daysFromYear0ToEpoch = 719468
)

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Epoch returns the record of 1970-01-01 00:00:00, a Thursday.
func Epoch() Record {
	return Record{Year: 1970, Month: 1, Day: 1, Weekday: 4}
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year.
// It returns 0 if month is outside 1-12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// IsNormalized reports whether every field of r lies in its canonical
// range and the day exists in the month.
func (r Record) IsNormalized() bool {
	return inRange(r.Second, 0, 59) &&
		inRange(r.Minute, 0, 59) &&
		inRange(r.Hour, 0, 23) &&
		inRange(r.Month, 1, 12) &&
		inRange(r.Day, 1, DaysInMonth(r.Year, r.Month)) &&
		r.Weekday == Weekday(r.Year, r.Month, r.Day)
}

// String returns the record in the form "2006-01-02 15:04:05".
func (r Record) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second)
}

// Normalize returns r with every field moved into its canonical range,
// carrying in the order second, minute, hour, day, month, year.
// Negative fields borrow from the next larger field.
func Normalize(r Record) Record {
	r.Minute, r.Second = carry(r.Minute, r.Second, 60)
	r.Hour, r.Minute = carry(r.Hour, r.Minute, 60)
	r.Day, r.Hour = carry(r.Day, r.Hour, 24)
	r.Year, r.Month = CarryMonth(r.Year, r.Month)
	r.Year, r.Month, r.Day = carryDay(r.Year, r.Month, r.Day)
	r.Weekday = Weekday(r.Year, r.Month, r.Day)
	return r
}

// CarryMonth moves month into 1-12, adjusting year by the floored
// quotient. CarryMonth(2025, 0) is (2024, 12); CarryMonth(2025, -12)
// is (2023, 12).
func CarryMonth(year, month int) (int, int) {
	year, m := carry(year, month-1, 12)
	return year, m + 1
}

// carryDay expects month in 1-12.
func carryDay(year, month, day int) (int, int, int) {
	// Skip whole 400-year cycles; the calendar repeats exactly.
	if day > daysPer400Years {
		n := (day - 1) / daysPer400Years
		day -= n * daysPer400Years
		year += 400 * n
	} else if day < -daysPer400Years {
		n := -day / daysPer400Years
		day += n * daysPer400Years
		year -= 400 * n
	}
	for day > DaysInMonth(year, month) {
		day -= DaysInMonth(year, month)
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	for day < 1 {
		month--
		if month < 1 {
			month = 12
			year--
		}
		day += DaysInMonth(year, month)
	}
	return year, month, day
}

// Weekday returns the ISO weekday of a valid date, 1 (Monday) to 7 (Sunday).
func Weekday(year, month, day int) int {
	// 1970-01-01 was a Thursday.
	return floorMod(DaysSinceEpoch(year, month, day)+3, 7) + 1
}

// DaysSinceEpoch returns the number of days from 1970-01-01 to the
// given valid date, negative for earlier dates.
func DaysSinceEpoch(year, month, day int) int {
	if month <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400
	doy := (153*((month+9)%12)+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400Years + doe - daysFromYear0ToEpoch
}

// carry returns hi and lo adjusted so that 0 <= lo < base.
func carry(hi, lo, base int) (nhi, nlo int) {
	q := floorDiv(lo, base)
	return hi + q, lo - q*base
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func inRange(i, min, max int) bool {
	return i >= min && i <= max
}
