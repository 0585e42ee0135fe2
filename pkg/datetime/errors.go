/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package datetime

import "fmt"

// ConversionError reports a year that does not fit the signed 32-bit range
// calendar arithmetic is done in.
type ConversionError struct {
	Value int64
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("int conversion failed: %d out of range", e.Value)
}

// UnrepresentableRelativeDateError is returned when a month or year offset
// lands on a day its destination month does not have.
type UnrepresentableRelativeDateError struct {
	Offset    Relative
	Direction Direction
}

func (e *UnrepresentableRelativeDateError) Error() string {
	return fmt.Sprintf("unrepresentable %s relative date: %s", e.Direction, e.Offset)
}

// InvalidDateError is an absolute date that does not exist on the calendar.
type InvalidDateError struct {
	Year, Month, Day int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: %04d-%02d-%02d", e.Year, e.Month, e.Day)
}

type InvalidTimeError struct {
	Hour, Minute int
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time: %02d:%02d", e.Hour, e.Minute)
}
