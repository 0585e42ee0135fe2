/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package datetime holds the values exchanged between the date prompt
// grammar and the resolver: partial specifications on one side, rendered
// calendar values on the other.
package datetime

import "fmt"

type Meridiem int

const (
	NoMeridiem Meridiem = iota
	AM
	PM
)

func (m Meridiem) String() string {
	switch m {
	case AM:
		return "am"
	case PM:
		return "pm"
	}
	return ""
}

// AbsoluteTime is a clock-of-day fragment such as "11am" or "1:15pm".
type AbsoluteTime struct {
	Hour      uint32
	Minute    uint32
	HasMinute bool
	Meridiem  Meridiem
}

func (t AbsoluteTime) String() string {
	s := fmt.Sprintf("%d", t.Hour)
	if t.HasMinute {
		s += fmt.Sprintf(":%02d", t.Minute)
	}
	return s + t.Meridiem.String()
}

// RelativeTime is a duration, not a clock time.
type RelativeTime struct {
	Hours      uint32
	Minutes    uint32
	HasMinutes bool
}

func (t RelativeTime) String() string {
	if t.HasMinutes {
		return fmt.Sprintf("+%d:%02d", t.Hours, t.Minutes)
	}
	return fmt.Sprintf("+%d", t.Hours)
}
