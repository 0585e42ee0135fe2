/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datetime

import "fmt"

// Direction tells a resolver which way a Relative offset points.
type Direction int

const (
	Future Direction = iota
	Past
)

func (d Direction) String() string {
	if d == Past {
		return "past"
	}
	return "future"
}

// Relative is an offset from a baseline. At most one unit is ever set,
// except that a weekday offset may carry a repeat count in weeks.
type Relative interface {
	fmt.Stringer
	Accept(RelativeVisitor, Direction) (Rendered, error)
}

type RelativeVisitor interface {
	VisitToday(Today, Direction) (Rendered, error)
	VisitHours(Hours, Direction) (Rendered, error)
	VisitDays(Days, Direction) (Rendered, error)
	VisitWeeks(Weeks, Direction) (Rendered, error)
	VisitWeekdayOffset(WeekdayOffset, Direction) (Rendered, error)
	VisitMonths(Months, Direction) (Rendered, error)
	VisitYears(Years, Direction) (Rendered, error)
}

type (
	// Today is the empty offset produced by a lone ".".
	Today struct{}

	Hours struct {
		N uint32
	}

	Days struct {
		N uint32
	}

	Weeks struct {
		N uint32
	}

	// WeekdayOffset is "+tue" or "+2tue": the Weeks-th matching weekday.
	WeekdayOffset struct {
		Weekday  uint32
		Weeks    uint32
		HasWeeks bool
	}

	Months struct {
		N uint32
	}

	Years struct {
		N uint32
	}
)

func (r Today) Accept(v RelativeVisitor, d Direction) (Rendered, error)  { return v.VisitToday(r, d) }
func (r Hours) Accept(v RelativeVisitor, d Direction) (Rendered, error)  { return v.VisitHours(r, d) }
func (r Days) Accept(v RelativeVisitor, d Direction) (Rendered, error)   { return v.VisitDays(r, d) }
func (r Weeks) Accept(v RelativeVisitor, d Direction) (Rendered, error)  { return v.VisitWeeks(r, d) }
func (r Months) Accept(v RelativeVisitor, d Direction) (Rendered, error) { return v.VisitMonths(r, d) }
func (r Years) Accept(v RelativeVisitor, d Direction) (Rendered, error)  { return v.VisitYears(r, d) }

func (r WeekdayOffset) Accept(v RelativeVisitor, d Direction) (Rendered, error) {
	return v.VisitWeekdayOffset(r, d)
}

// Count is the repeat count, one when none was given.
func (r WeekdayOffset) Count() uint32 {
	if !r.HasWeeks {
		return 1
	}
	return r.Weeks
}

func (r Today) String() string  { return "today" }
func (r Hours) String() string  { return fmt.Sprintf("hours=%d", r.N) }
func (r Days) String() string   { return fmt.Sprintf("days=%d", r.N) }
func (r Weeks) String() string  { return fmt.Sprintf("weeks=%d", r.N) }
func (r Months) String() string { return fmt.Sprintf("months=%d", r.N) }
func (r Years) String() string  { return fmt.Sprintf("years=%d", r.N) }

func (r WeekdayOffset) String() string {
	if r.HasWeeks {
		return fmt.Sprintf("weeks=%d weekday=%d", r.Weeks, r.Weekday)
	}
	return fmt.Sprintf("weekday=%d", r.Weekday)
}
