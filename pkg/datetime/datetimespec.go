/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datetime

import "fmt"

// DateTimeSpec is the result of classifying a date prompt. Relative
// variants name the baseline they are measured from: "now" for the
// wall-clock baseline, "default" for the value being edited.
type DateTimeSpec interface {
	fmt.Stringer
	Accept(SpecVisitor) (Rendered, error)
}

type SpecVisitor interface {
	VisitAbsolute(AbsoluteSpec) (Rendered, error)
	VisitNowRelativeFuture(NowRelativeFuture) (Rendered, error)
	VisitNowRelativePast(NowRelativePast) (Rendered, error)
	VisitDefaultRelativeFuture(DefaultRelativeFuture) (Rendered, error)
	VisitDefaultRelativePast(DefaultRelativePast) (Rendered, error)
	VisitTimeRange(TimeRangeAbsoluteStartAbsoluteEnd) (Rendered, error)
	VisitTimeSpan(TimeRangeAbsoluteStartRelativeEnd) (Rendered, error)
}

type (
	AbsoluteSpec struct {
		Absolute Absolute
	}

	NowRelativeFuture struct {
		Offset Relative
	}

	NowRelativePast struct {
		Offset Relative
	}

	DefaultRelativeFuture struct {
		Offset Relative
	}

	DefaultRelativePast struct {
		Offset Relative
	}

	// TimeRangeAbsoluteStartAbsoluteEnd is "11am-1:15pm".
	TimeRangeAbsoluteStartAbsoluteEnd struct {
		Start AbsoluteTime
		End   AbsoluteTime
	}

	// TimeRangeAbsoluteStartRelativeEnd is "11am+2:15".
	TimeRangeAbsoluteStartRelativeEnd struct {
		Start    AbsoluteTime
		Duration RelativeTime
	}
)

func (s AbsoluteSpec) Accept(v SpecVisitor) (Rendered, error) { return v.VisitAbsolute(s) }

func (s NowRelativeFuture) Accept(v SpecVisitor) (Rendered, error) {
	return v.VisitNowRelativeFuture(s)
}

func (s NowRelativePast) Accept(v SpecVisitor) (Rendered, error) {
	return v.VisitNowRelativePast(s)
}

func (s DefaultRelativeFuture) Accept(v SpecVisitor) (Rendered, error) {
	return v.VisitDefaultRelativeFuture(s)
}

func (s DefaultRelativePast) Accept(v SpecVisitor) (Rendered, error) {
	return v.VisitDefaultRelativePast(s)
}

func (s TimeRangeAbsoluteStartAbsoluteEnd) Accept(v SpecVisitor) (Rendered, error) {
	return v.VisitTimeRange(s)
}

func (s TimeRangeAbsoluteStartRelativeEnd) Accept(v SpecVisitor) (Rendered, error) {
	return v.VisitTimeSpan(s)
}

func (s AbsoluteSpec) String() string          { return "Absolute[" + s.Absolute.String() + "]" }
func (s NowRelativeFuture) String() string     { return "NowRelativeFuture[" + s.Offset.String() + "]" }
func (s NowRelativePast) String() string       { return "NowRelativePast[" + s.Offset.String() + "]" }
func (s DefaultRelativeFuture) String() string { return "DefaultRelativeFuture[" + s.Offset.String() + "]" }
func (s DefaultRelativePast) String() string   { return "DefaultRelativePast[" + s.Offset.String() + "]" }

func (s TimeRangeAbsoluteStartAbsoluteEnd) String() string {
	return "TimeRange[" + s.Start.String() + " " + s.End.String() + "]"
}

func (s TimeRangeAbsoluteStartRelativeEnd) String() string {
	return "TimeSpan[" + s.Start.String() + " " + s.Duration.String() + "]"
}
