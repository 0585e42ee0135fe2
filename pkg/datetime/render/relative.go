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

type relativeRenderer struct {
	baseline time.Time
}

func sign(d datetime.Direction) int {
	if d == datetime.Past {
		return -1
	}
	return 1
}

func (r relativeRenderer) VisitToday(_ datetime.Today, _ datetime.Direction) (datetime.Rendered, error) {
	return datetime.NewDate(r.baseline), nil
}

func (r relativeRenderer) VisitHours(o datetime.Hours, d datetime.Direction) (datetime.Rendered, error) {
	s := sign(d)
	dt := r.baseline.
		AddDate(0, 0, s*int(o.N/24)).
		Add(time.Duration(s) * time.Duration(o.N%24) * time.Hour)
	return datetime.DateTime{Time: dt}, nil
}

func (r relativeRenderer) VisitDays(o datetime.Days, d datetime.Direction) (datetime.Rendered, error) {
	return datetime.Date{Time: datetime.NewDate(r.baseline).Time.AddDate(0, 0, sign(d)*int(o.N))}, nil
}

func (r relativeRenderer) VisitWeeks(o datetime.Weeks, d datetime.Direction) (datetime.Rendered, error) {
	return datetime.Date{Time: datetime.NewDate(r.baseline).Time.AddDate(0, 0, sign(d)*7*int(o.N))}, nil
}

// VisitWeekdayOffset steps away from the baseline one day at a time until
// the weekday matches, then jumps the remaining Count-1 weeks. The baseline
// day itself never matches, so "+tue" on a Tuesday is a week later.
func (r relativeRenderer) VisitWeekdayOffset(o datetime.WeekdayOffset, d datetime.Direction) (datetime.Rendered, error) {
	if o.Weekday < 1 || o.Weekday > 7 {
		return nil, &datetime.InvalidDateError{Day: int(o.Weekday)}
	}

	s := sign(d)
	t := datetime.NewDate(r.baseline).Time
	for {
		t = t.AddDate(0, 0, s)
		if isoWeekday(t) == o.Weekday {
			break
		}
	}

	if count := o.Count(); count > 1 {
		t = t.AddDate(0, 0, s*7*int(count-1))
	}

	return datetime.Date{Time: t}, nil
}

// VisitMonths only honours the offset modulo a year, so "+15m" moves as far
// as "+3m". A destination month without the baseline's day is an error.
func (r relativeRenderer) VisitMonths(o datetime.Months, d datetime.Direction) (datetime.Rendered, error) {
	b := r.baseline
	year := b.Year()
	month0 := int(b.Month()) - 1 + sign(d)*int(o.N%12)

	switch {
	case month0 > 11:
		year, month0 = year+1, month0-12
	case month0 < 0:
		year, month0 = year-1, month0+12
	}

	t, ok := date(year, month0+1, b.Day(), b.Location())
	if !ok {
		return nil, &datetime.UnrepresentableRelativeDateError{Offset: o, Direction: d}
	}

	return datetime.Date{Time: t}, nil
}

// VisitYears keeps month and day. February 29th has no counterpart in a
// common year and is reported rather than moved.
func (r relativeRenderer) VisitYears(o datetime.Years, d datetime.Direction) (datetime.Rendered, error) {
	b := r.baseline
	year, err := toYear(int64(b.Year()) + int64(sign(d))*int64(o.N))
	if err != nil {
		return nil, err
	}

	t, ok := date(year, int(b.Month()), b.Day(), b.Location())
	if !ok {
		return nil, &datetime.UnrepresentableRelativeDateError{Offset: o, Direction: d}
	}

	return datetime.Date{Time: t}, nil
}
