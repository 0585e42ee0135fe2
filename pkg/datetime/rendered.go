/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datetime

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

type Kind string

const (
	KindDate      Kind = "date"
	KindDateTime  Kind = "datetime"
	KindWeek      Kind = "week"
	KindTimeRange Kind = "timerange"
)

// Rendered is a fully resolved value: a Date, DateTime, Week or TimeRange.
type Rendered interface {
	fmt.Stringer
	Kind() Kind
	rendered()
}

type (
	// Date is a calendar day; its time of day is always midnight.
	Date struct {
		Time time.Time
	}

	DateTime struct {
		Time time.Time
	}

	// Week is an ISO week number echoed back without a year.
	Week struct {
		Number uint32
	}

	TimeRange struct {
		Start Clock
		End   Clock
	}
)

func (Date) rendered()      {}
func (DateTime) rendered()  {}
func (Week) rendered()      {}
func (TimeRange) rendered() {}

func (Date) Kind() Kind      { return KindDate }
func (DateTime) Kind() Kind  { return KindDateTime }
func (Week) Kind() Kind      { return KindWeek }
func (TimeRange) Kind() Kind { return KindTimeRange }

func (d Date) String() string      { return d.Time.Format(DateLayout) }
func (d DateTime) String() string  { return d.Time.Format(DateTimeLayout) }
func (w Week) String() string      { return fmt.Sprintf("w%02d", w.Number) }
func (r TimeRange) String() string { return r.Start.String() + "-" + r.End.String() }

// NewDate truncates t to midnight, keeping its location.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

const minutesPerDay = 24 * 60

// Add returns the clock d later, wrapping at midnight.
func (c Clock) Add(d time.Duration) Clock {
	m := (c.Hour*60 + c.Minute + int(d/time.Minute)) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return Clock{Hour: m / 60, Minute: m % 60}
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
