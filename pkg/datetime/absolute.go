/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datetime

import "fmt"

// Absolute is one of the fixed combinations of calendar fields the grammar
// can produce. The set is closed: only the types in this file implement it.
type Absolute interface {
	fmt.Stringer
	Accept(AbsoluteVisitor) (Rendered, error)
}

// AbsoluteVisitor has one method per Absolute shape, so a resolver that
// misses a shape fails to compile.
type AbsoluteVisitor interface {
	VisitYearMonthDay(YearMonthDay) (Rendered, error)
	VisitDayOfMonth(DayOfMonth) (Rendered, error)
	VisitMonthDay(MonthDay) (Rendered, error)
	VisitTimeOfDay(TimeOfDay) (Rendered, error)
	VisitDayOfWeek(DayOfWeek) (Rendered, error)
	VisitMonthDayTime(MonthDayTime) (Rendered, error)
	VisitWeekNumber(WeekNumber) (Rendered, error)
	VisitWeekDate(WeekDate) (Rendered, error)
}

type (
	// YearMonthDay comes from "Y-M-D", "M/D/Y" and "month D Y".
	YearMonthDay struct {
		Year, Month, Day uint32
	}

	DayOfMonth struct {
		Day uint32
	}

	MonthDay struct {
		Month, Day uint32
	}

	TimeOfDay struct {
		Time AbsoluteTime
	}

	// DayOfWeek holds an ISO weekday code, 1 for Monday through 7 for Sunday.
	DayOfWeek struct {
		Weekday uint32
	}

	MonthDayTime struct {
		Month, Day, Hour, Minute uint32
	}

	WeekNumber struct {
		Week uint32
	}

	// WeekDate is an ISO 8601 week date.
	WeekDate struct {
		Year, Week, Weekday uint32
	}
)

func (a YearMonthDay) Accept(v AbsoluteVisitor) (Rendered, error) { return v.VisitYearMonthDay(a) }
func (a DayOfMonth) Accept(v AbsoluteVisitor) (Rendered, error)   { return v.VisitDayOfMonth(a) }
func (a MonthDay) Accept(v AbsoluteVisitor) (Rendered, error)     { return v.VisitMonthDay(a) }
func (a TimeOfDay) Accept(v AbsoluteVisitor) (Rendered, error)    { return v.VisitTimeOfDay(a) }
func (a DayOfWeek) Accept(v AbsoluteVisitor) (Rendered, error)    { return v.VisitDayOfWeek(a) }
func (a MonthDayTime) Accept(v AbsoluteVisitor) (Rendered, error) { return v.VisitMonthDayTime(a) }
func (a WeekNumber) Accept(v AbsoluteVisitor) (Rendered, error)   { return v.VisitWeekNumber(a) }
func (a WeekDate) Accept(v AbsoluteVisitor) (Rendered, error)     { return v.VisitWeekDate(a) }

func (a YearMonthDay) String() string {
	return fmt.Sprintf("year=%d month=%d day=%d", a.Year, a.Month, a.Day)
}

func (a DayOfMonth) String() string {
	return fmt.Sprintf("day=%d", a.Day)
}

func (a MonthDay) String() string {
	return fmt.Sprintf("month=%d day=%d", a.Month, a.Day)
}

func (a TimeOfDay) String() string {
	return "time=" + a.Time.String()
}

func (a DayOfWeek) String() string {
	return fmt.Sprintf("weekday=%d", a.Weekday)
}

func (a MonthDayTime) String() string {
	return fmt.Sprintf("month=%d day=%d hour=%d minute=%d", a.Month, a.Day, a.Hour, a.Minute)
}

func (a WeekNumber) String() string {
	return fmt.Sprintf("week=%d", a.Week)
}

func (a WeekDate) String() string {
	return fmt.Sprintf("year=%d week=%d weekday=%d", a.Year, a.Week, a.Weekday)
}
