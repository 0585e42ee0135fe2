/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package render resolves a classified date prompt against two baselines:
// def, the value being edited, and now, the wall clock. It never reads the
// clock itself.
package render

import (
	"time"

	"github.com/dburkart/orgdate/pkg/datetime"
)

// Render resolves spec. Absolute specs and "now" offsets are measured from
// now, "default" offsets from def, and time ranges from neither.
func Render(def, now time.Time, spec datetime.DateTimeSpec) (datetime.Rendered, error) {
	return spec.Accept(renderer{def: def, now: now})
}

type renderer struct {
	def time.Time
	now time.Time
}

func (r renderer) VisitAbsolute(s datetime.AbsoluteSpec) (datetime.Rendered, error) {
	return s.Absolute.Accept(absoluteRenderer{baseline: r.now})
}

func (r renderer) VisitNowRelativeFuture(s datetime.NowRelativeFuture) (datetime.Rendered, error) {
	return s.Offset.Accept(relativeRenderer{baseline: r.now}, datetime.Future)
}

func (r renderer) VisitNowRelativePast(s datetime.NowRelativePast) (datetime.Rendered, error) {
	return s.Offset.Accept(relativeRenderer{baseline: r.now}, datetime.Past)
}

func (r renderer) VisitDefaultRelativeFuture(s datetime.DefaultRelativeFuture) (datetime.Rendered, error) {
	return s.Offset.Accept(relativeRenderer{baseline: r.def}, datetime.Future)
}

func (r renderer) VisitDefaultRelativePast(s datetime.DefaultRelativePast) (datetime.Rendered, error) {
	return s.Offset.Accept(relativeRenderer{baseline: r.def}, datetime.Past)
}

func (r renderer) VisitTimeRange(s datetime.TimeRangeAbsoluteStartAbsoluteEnd) (datetime.Rendered, error) {
	start, err := clock(s.Start)
	if err != nil {
		return nil, err
	}
	end, err := clock(s.End)
	if err != nil {
		return nil, err
	}
	return datetime.TimeRange{Start: start, End: end}, nil
}

// VisitTimeSpan adds the duration to the start time. Spans past midnight
// wrap around like a clock face.
func (r renderer) VisitTimeSpan(s datetime.TimeRangeAbsoluteStartRelativeEnd) (datetime.Rendered, error) {
	start, err := clock(s.Start)
	if err != nil {
		return nil, err
	}

	hours := time.Duration(s.Duration.Hours%24) * time.Hour
	minutes := time.Duration(0)
	if s.Duration.HasMinutes {
		minutes = time.Duration(s.Duration.Minutes%(24*60)) * time.Minute
	}

	return datetime.TimeRange{Start: start, End: start.Add(hours + minutes)}, nil
}

// applyMeridiem converts a 12-hour clock hour to 24-hour form. 12am is
// midnight and 12pm is noon.
func applyMeridiem(hour uint32, meridiem datetime.Meridiem) uint32 {
	switch meridiem {
	case datetime.AM:
		if hour == 12 {
			return 0
		}
	case datetime.PM:
		if hour < 12 {
			return hour + 12
		}
	}
	return hour
}

// clock converts a clock fragment to a 24-hour time of day. A missing
// minute is zero; an hour of 0 or above 12 next to a meridiem is invalid.
func clock(t datetime.AbsoluteTime) (datetime.Clock, error) {
	if t.Meridiem != datetime.NoMeridiem && (t.Hour == 0 || t.Hour > 12) {
		return datetime.Clock{}, &datetime.InvalidTimeError{Hour: int(t.Hour), Minute: int(t.Minute)}
	}

	hour := applyMeridiem(t.Hour, t.Meridiem)
	minute := uint32(0)
	if t.HasMinute {
		minute = t.Minute
	}

	return newClock(hour, minute)
}

func newClock(hour, minute uint32) (datetime.Clock, error) {
	if hour > 23 || minute > 59 {
		return datetime.Clock{}, &datetime.InvalidTimeError{Hour: int(hour), Minute: int(minute)}
	}
	return datetime.Clock{Hour: int(hour), Minute: int(minute)}, nil
}
