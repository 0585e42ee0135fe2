/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package render

import (
	"time"

	"github.com/dburkart/orgdate/pkg/datetime"
)

// absoluteRenderer fills in the fields an Absolute leaves out from the
// baseline. Dates that fall before the baseline roll forward to the next
// month, year or day, depending on the coarsest field given.
type absoluteRenderer struct {
	baseline time.Time
}

func (r absoluteRenderer) VisitYearMonthDay(a datetime.YearMonthDay) (datetime.Rendered, error) {
	year, err := guessAbbreviatedYear(r.baseline, a.Year)
	if err != nil {
		return nil, err
	}

	d, err := mustDate(year, int(a.Month), int(a.Day), r.baseline.Location())
	if err != nil {
		return nil, err
	}

	return datetime.Date{Time: d}, nil
}

func (r absoluteRenderer) VisitDayOfMonth(a datetime.DayOfMonth) (datetime.Rendered, error) {
	b := r.baseline
	d, err := mustDate(b.Year(), int(b.Month()), int(a.Day), b.Location())
	if err != nil {
		return nil, err
	}

	if atTimeOf(d, b).Before(b) {
		year, month := b.Year(), int(b.Month())+1
		if month > 12 {
			year, month = year+1, 1
		}
		d, err = mustDate(year, month, int(a.Day), b.Location())
		if err != nil {
			return nil, err
		}
	}

	return datetime.Date{Time: d}, nil
}

func (r absoluteRenderer) VisitMonthDay(a datetime.MonthDay) (datetime.Rendered, error) {
	b := r.baseline
	d, err := mustDate(b.Year(), int(a.Month), int(a.Day), b.Location())
	if err != nil {
		return nil, err
	}

	if atTimeOf(d, b).Before(b) {
		d, err = mustDate(b.Year()+1, int(a.Month), int(a.Day), b.Location())
		if err != nil {
			return nil, err
		}
	}

	return datetime.Date{Time: d}, nil
}

func (r absoluteRenderer) VisitTimeOfDay(a datetime.TimeOfDay) (datetime.Rendered, error) {
	c, err := clock(a.Time)
	if err != nil {
		return nil, err
	}

	b := r.baseline
	dt := time.Date(b.Year(), b.Month(), b.Day(), c.Hour, c.Minute, 0, 0, b.Location())
	if dt.Before(b) {
		dt = dt.AddDate(0, 0, 1)
	}

	return datetime.DateTime{Time: dt}, nil
}

func (r absoluteRenderer) VisitDayOfWeek(a datetime.DayOfWeek) (datetime.Rendered, error) {
	if a.Weekday < 1 || a.Weekday > 7 {
		return nil, &datetime.InvalidDateError{Day: int(a.Weekday)}
	}

	d := datetime.NewDate(r.baseline).Time
	for isoWeekday(d) != a.Weekday {
		d = d.AddDate(0, 0, 1)
	}

	return datetime.Date{Time: d}, nil
}

func (r absoluteRenderer) VisitMonthDayTime(a datetime.MonthDayTime) (datetime.Rendered, error) {
	c, err := newClock(a.Hour, a.Minute)
	if err != nil {
		return nil, err
	}

	b := r.baseline
	d, err := mustDate(b.Year(), int(a.Month), int(a.Day), b.Location())
	if err != nil {
		return nil, err
	}

	dt := time.Date(d.Year(), d.Month(), d.Day(), c.Hour, c.Minute, 0, 0, b.Location())
	if dt.Before(b) {
		d, err = mustDate(b.Year()+1, int(a.Month), int(a.Day), b.Location())
		if err != nil {
			return nil, err
		}
		dt = time.Date(d.Year(), d.Month(), d.Day(), c.Hour, c.Minute, 0, 0, b.Location())
	}

	return datetime.DateTime{Time: dt}, nil
}

func (r absoluteRenderer) VisitWeekNumber(a datetime.WeekNumber) (datetime.Rendered, error) {
	return datetime.Week{Number: a.Week}, nil
}

func (r absoluteRenderer) VisitWeekDate(a datetime.WeekDate) (datetime.Rendered, error) {
	year, err := toYear(int64(a.Year))
	if err != nil {
		return nil, err
	}

	d, ok := isoWeekDate(year, a.Week, a.Weekday, r.baseline.Location())
	if !ok {
		return nil, &datetime.InvalidDateError{Year: year, Month: int(a.Week), Day: int(a.Weekday)}
	}

	return datetime.Date{Time: d}, nil
}
