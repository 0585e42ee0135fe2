/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import "github.com/dburkart/orgdate/pkg/datetime"

// relative
//
// Grammar:
//
//	relative        = ( number weekday-name ) / ( number unit ) / weekday-name / number
//	unit            = "h" / "d" / "w" / "m" / "y"
//
// A weekday name directly after the count is tried before the unit letters,
// otherwise "2mon" and "2wed" would stop after the "m" and "w".
func (p *Parser) relative() (datetime.Relative, bool) {
	return first(p.Scanner,
		p.relativeNumberWeekday,
		p.relativeUnit("h", func(n uint32) datetime.Relative { return datetime.Hours{N: n} }),
		p.relativeUnit("d", func(n uint32) datetime.Relative { return datetime.Days{N: n} }),
		p.relativeUnit("w", func(n uint32) datetime.Relative { return datetime.Weeks{N: n} }),
		p.relativeUnit("m", func(n uint32) datetime.Relative { return datetime.Months{N: n} }),
		p.relativeUnit("y", func(n uint32) datetime.Relative { return datetime.Years{N: n} }),
		p.relativeWeekday,
		p.relativeImpliedDays,
	)
}

func (p *Parser) relativeUnit(unit string, build func(uint32) datetime.Relative) func() (datetime.Relative, bool) {
	return func() (datetime.Relative, bool) {
		n, ok := p.number()
		if !ok || !p.Scanner.MatchFold(unit) {
			return nil, false
		}
		return build(n), true
	}
}

func (p *Parser) relativeNumberWeekday() (datetime.Relative, bool) {
	weeks, ok := p.number()
	if !ok {
		return nil, false
	}
	weekday, ok := p.weekday()
	if !ok {
		return nil, false
	}
	return datetime.WeekdayOffset{Weekday: weekday, Weeks: weeks, HasWeeks: true}, true
}

func (p *Parser) relativeWeekday() (datetime.Relative, bool) {
	weekday, ok := p.weekday()
	if !ok {
		return nil, false
	}
	return datetime.WeekdayOffset{Weekday: weekday}, true
}

func (p *Parser) relativeImpliedDays() (datetime.Relative, bool) {
	days, ok := p.number()
	if !ok {
		return nil, false
	}
	return datetime.Days{N: days}, true
}

// dotPlusRelative
//
// Grammar:
//
//	dot-plus        = ".+" relative
func (p *Parser) dotPlusRelative() (datetime.DateTimeSpec, bool) {
	if !p.Scanner.MatchLiteral(".+") {
		return nil, false
	}
	relative, ok := p.relative()
	if !ok {
		return nil, false
	}
	return datetime.NowRelativeFuture{Offset: relative}, true
}

// dotMinusRelative
//
// Grammar:
//
//	dot-minus       = ".-" relative
func (p *Parser) dotMinusRelative() (datetime.DateTimeSpec, bool) {
	if !p.Scanner.MatchLiteral(".-") {
		return nil, false
	}
	relative, ok := p.relative()
	if !ok {
		return nil, false
	}
	return datetime.NowRelativePast{Offset: relative}, true
}

// dotRelative
//
// Grammar:
//
//	dot             = "."
func (p *Parser) dotRelative() (datetime.DateTimeSpec, bool) {
	if !p.Scanner.MatchLiteral(".") {
		return nil, false
	}
	return datetime.NowRelativeFuture{Offset: datetime.Today{}}, true
}

// plusRelative
//
// Grammar:
//
//	plus            = "+" relative
func (p *Parser) plusRelative() (datetime.DateTimeSpec, bool) {
	if !p.Scanner.MatchLiteral("+") {
		return nil, false
	}
	relative, ok := p.relative()
	if !ok {
		return nil, false
	}
	return datetime.NowRelativeFuture{Offset: relative}, true
}

// minusRelative
//
// Grammar:
//
//	minus           = "-" relative
func (p *Parser) minusRelative() (datetime.DateTimeSpec, bool) {
	if !p.Scanner.MatchLiteral("-") {
		return nil, false
	}
	relative, ok := p.relative()
	if !ok {
		return nil, false
	}
	return datetime.NowRelativePast{Offset: relative}, true
}

// plusPlusRelative
//
// Grammar:
//
//	plus-plus       = "++" relative
func (p *Parser) plusPlusRelative() (datetime.DateTimeSpec, bool) {
	if !p.Scanner.MatchLiteral("++") {
		return nil, false
	}
	relative, ok := p.relative()
	if !ok {
		return nil, false
	}
	return datetime.DefaultRelativeFuture{Offset: relative}, true
}

// minusMinusRelative
//
// Grammar:
//
//	minus-minus     = "--" relative
func (p *Parser) minusMinusRelative() (datetime.DateTimeSpec, bool) {
	if !p.Scanner.MatchLiteral("--") {
		return nil, false
	}
	relative, ok := p.relative()
	if !ok {
		return nil, false
	}
	return datetime.DefaultRelativePast{Offset: relative}, true
}
