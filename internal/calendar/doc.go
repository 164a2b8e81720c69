/*
Package calendar implements proleptic Gregorian calendar arithmetic on
broken-down wall-clock records.

A Record holds year, month, day, hour, minute and second fields that may
temporarily lie outside their canonical ranges while arithmetic is in
progress. Normalize carries every overflowing field into the next larger
one (second, minute, hour, day, month, year) so that the result is a
well-formed calendar date:

	r := calendar.Record{Year: 2024, Month: 1, Day: 31 + 29}
	calendar.Normalize(r) // 2024-02-29 00:00:00, Weekday 4 (Thursday)

Weekdays use ISO numbering: Monday is 1 and Sunday is 7.

The package knows nothing about time zones; converting a Record to and
from an absolute instant is left to the caller.
*/
package calendar
