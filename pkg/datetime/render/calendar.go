/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package render

import (
	"math"
	"time"

	"github.com/dburkart/orgdate/pkg/datetime"
)

// date builds midnight of year-month-day in loc, reporting false when the
// day does not exist instead of letting time.Date normalise it.
func date(year, month, day int, loc *time.Location) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	return t, t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func mustDate(year, month, day int, loc *time.Location) (time.Time, error) {
	t, ok := date(year, month, day, loc)
	if !ok {
		return time.Time{}, &datetime.InvalidDateError{Year: year, Month: month, Day: day}
	}
	return t, nil
}

// atTimeOf moves d onto the wall-clock time of day of ref.
func atTimeOf(d, ref time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), d.Location())
}

// isoWeekday numbers the days of the week from 1 for Monday to 7 for Sunday.
func isoWeekday(t time.Time) uint32 {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return uint32(t.Weekday())
}

// toYear narrows a parsed year to the signed 32-bit range.
func toYear(v int64) (int, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &datetime.ConversionError{Value: v}
	}
	return int(v), nil
}

// guessAbbreviatedYear reads a one-digit year as a year of the baseline's
// millennium, so 9 against 2006 is 2009. Anything larger is taken literally.
func guessAbbreviatedYear(baseline time.Time, year uint32) (int, error) {
	if year >= 10 {
		return toYear(int64(year))
	}

	if baseline.Year() < 0 {
		return 0, &datetime.ConversionError{Value: int64(baseline.Year())}
	}

	return baseline.Year()/1000*1000 + int(year), nil
}

// isoWeekDate converts an ISO 8601 week date. Week 1 is the week holding
// January 4th.
func isoWeekDate(year int, week, weekday uint32, loc *time.Location) (time.Time, bool) {
	if weekday < 1 || weekday > 7 || week < 1 {
		return time.Time{}, false
	}

	_, weeks := time.Date(year, time.December, 28, 0, 0, 0, 0, loc).ISOWeek()
	if week > uint32(weeks) {
		return time.Time{}, false
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	monday := jan4.AddDate(0, 0, 1-int(isoWeekday(jan4)))

	return monday.AddDate(0, 0, int(week-1)*7+int(weekday-1)), true
}
