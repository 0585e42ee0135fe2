/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

var monthNames = [...]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var weekdayNames = [...]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// shortestName is the minimum abbreviation accepted for a month or weekday.
const shortestName = 3

// matchName consumes the longest abbreviation of any name in names and
// returns its one-based index. Longer abbreviations are tried first so
// "sept" is never cut short at "sep".
func (p *Parser) matchName(names []string) (uint32, bool) {
	for i, name := range names {
		for n := len(name); n >= shortestName; n-- {
			if p.Scanner.MatchFold(name[:n]) {
				return uint32(i + 1), true
			}
		}
	}
	return 0, false
}

// month returns the month number for a month name
//
// Grammar:
//
//	month-name      = "jan" ["u" ["a" ["r" ["y"]]]] / "feb" ... / "dec" ...
func (p *Parser) month() (uint32, bool) {
	return p.matchName(monthNames[:])
}

// weekday returns the ISO weekday code, 1 for Monday, for a weekday name
//
// Grammar:
//
//	weekday-name    = "mon" ["d" ["a" ["y"]]] / "tue" ... / "sun" ...
func (p *Parser) weekday() (uint32, bool) {
	return p.matchName(weekdayNames[:])
}

// Months lists the full month names, for completion.
func Months() []string {
	return append([]string(nil), monthNames[:]...)
}

// Weekdays lists the full weekday names, for completion.
func Weekdays() []string {
	return append([]string(nil), weekdayNames[:]...)
}
