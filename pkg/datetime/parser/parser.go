/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"strconv"

	"github.com/dburkart/orgdate/pkg/common/parse"
	"github.com/dburkart/orgdate/pkg/datetime"
	"github.com/dburkart/orgdate/pkg/datetime/scanner"
)

// Parser classifies a date prompt into a datetime.DateTimeSpec.
//
// Alternatives are tried in a fixed priority order and the first one that
// matches wins, even when a later one would consume more input. Whatever the
// winning alternative did not consume is handed back to the caller.
type Parser struct {
	Scanner *scanner.Scanner
}

func New(input string) *Parser {
	return &Parser{Scanner: scanner.New(input)}
}

// Parse returns the unconsumed remainder of the input and the classified DateTimeSpec.
//
// Grammar:
//
//	prompt          = dashed-date / slashed-date / iso-date / weekday /
//	                  month-date / time-duration / time-range /
//	                  day-or-time / iso-week / relative-form
func (p *Parser) Parse() (string, datetime.DateTimeSpec, error) {
	result, ok := first(p.Scanner,
		p.dashedDate,
		p.slashedDate,
		p.isoDate,
		p.weekdayName,
		p.monthDate,
		p.timeDuration,
		p.timeRange,
		p.dayOrTime,
		p.isoWeek,
		p.dotPlusRelative,
		p.dotMinusRelative,
		p.dotRelative,
		p.plusRelative,
		p.minusRelative,
		p.plusPlusRelative,
		p.minusMinusRelative,
	)
	if !ok {
		return p.Scanner.Input, nil, parse.NewSyntaxError(p.furthestLocation(), "no date, time or offset recognized")
	}

	return p.Scanner.Remaining(), result, nil
}

// first runs each alternative from the same starting position and returns
// the first success. The scanner is rewound after every failed attempt.
func first[T any](s *scanner.Scanner, alternatives ...func() (T, bool)) (T, bool) {
	mark := s.Mark()
	for _, alternative := range alternatives {
		if v, ok := alternative(); ok {
			return v, true
		}
		s.Reset(mark)
	}

	var zero T
	return zero, false
}

func (p *Parser) furthestLocation() parse.Location {
	s := scanner.Scanner{Input: p.Scanner.Input, Pos: p.Scanner.Furthest}

	width := s.MatchWord()
	if n := s.MatchInteger(); n > width {
		width = n
	}
	if width == 0 && !s.AtEnd() {
		width = 1
	}

	return parse.Location{Start: s.Pos, End: s.Pos + width}
}

// number returns the value of the next digit run. Runs that do not fit in
// 32 bits are rejected rather than clamped.
//
// Grammar:
//
//	number          = 1*DIGIT
func (p *Parser) number() (uint32, bool) {
	start := p.Scanner.Pos
	size := p.Scanner.MatchInteger()
	if size == 0 {
		return 0, false
	}
	p.Scanner.Advance(size)

	n, err := strconv.ParseUint(p.Scanner.Input[start:start+size], 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(n), true
}

// whitespace consumes a run of blanks.
//
// Grammar:
//
//	WS              = 1*(SP / HTAB)
func (p *Parser) whitespace() bool {
	size := p.Scanner.MatchWhitespace()
	if size == 0 {
		return false
	}
	p.Scanner.Advance(size)
	return true
}

// separator
//
// Grammar:
//
//	separator       = "-" / WS
func (p *Parser) separator() bool {
	return p.Scanner.MatchLiteral("-") || p.whitespace()
}

// dashedDate
//
// Grammar:
//
//	dashed-date     = number "-" number "-" number
func (p *Parser) dashedDate() (datetime.DateTimeSpec, bool) {
	year, ok := p.number()
	if !ok || !p.Scanner.MatchLiteral("-") {
		return nil, false
	}
	month, ok := p.number()
	if !ok || !p.Scanner.MatchLiteral("-") {
		return nil, false
	}
	day, ok := p.number()
	if !ok {
		return nil, false
	}

	return datetime.AbsoluteSpec{Absolute: datetime.YearMonthDay{Year: year, Month: month, Day: day}}, true
}

// slashedDate
//
// Grammar:
//
//	slashed-date    = number "/" number [ "/" number ]
func (p *Parser) slashedDate() (datetime.DateTimeSpec, bool) {
	absolute, ok := first(p.Scanner, p.monthDayYearSlashed, p.monthDaySlashed)
	if !ok {
		return nil, false
	}
	return datetime.AbsoluteSpec{Absolute: absolute}, true
}

func (p *Parser) monthDayYearSlashed() (datetime.Absolute, bool) {
	month, ok := p.number()
	if !ok || !p.Scanner.MatchLiteral("/") {
		return nil, false
	}
	day, ok := p.number()
	if !ok || !p.Scanner.MatchLiteral("/") {
		return nil, false
	}
	year, ok := p.number()
	if !ok {
		return nil, false
	}

	return datetime.YearMonthDay{Year: year, Month: month, Day: day}, true
}

func (p *Parser) monthDaySlashed() (datetime.Absolute, bool) {
	month, ok := p.number()
	if !ok || !p.Scanner.MatchLiteral("/") {
		return nil, false
	}
	day, ok := p.number()
	if !ok {
		return nil, false
	}

	return datetime.MonthDay{Month: month, Day: day}, true
}

// isoWeekNumber
//
// Grammar:
//
//	week-number     = "w" number
func (p *Parser) isoWeekNumber() (uint32, bool) {
	if !p.Scanner.MatchFold("w") {
		return 0, false
	}
	return p.number()
}

// isoDate
//
// Grammar:
//
//	iso-date        = number separator week-number separator iso-weekday
//	iso-weekday     = weekday-name / number
func (p *Parser) isoDate() (datetime.DateTimeSpec, bool) {
	year, ok := p.number()
	if !ok || !p.separator() {
		return nil, false
	}
	week, ok := p.isoWeekNumber()
	if !ok || !p.separator() {
		return nil, false
	}
	weekday, ok := first(p.Scanner, p.weekday, p.number)
	if !ok {
		return nil, false
	}

	return datetime.AbsoluteSpec{Absolute: datetime.WeekDate{Year: year, Week: week, Weekday: weekday}}, true
}

// weekdayName
//
// Grammar:
//
//	weekday         = weekday-name
func (p *Parser) weekdayName() (datetime.DateTimeSpec, bool) {
	weekday, ok := p.weekday()
	if !ok {
		return nil, false
	}
	return datetime.AbsoluteSpec{Absolute: datetime.DayOfWeek{Weekday: weekday}}, true
}

// monthDate
//
// Grammar:
//
//	month-date      = month-name WS number [ WS number ]
func (p *Parser) monthDate() (datetime.DateTimeSpec, bool) {
	absolute, ok := first(p.Scanner, p.monthDayYear, p.monthDay)
	if !ok {
		return nil, false
	}
	return datetime.AbsoluteSpec{Absolute: absolute}, true
}

func (p *Parser) monthDayYear() (datetime.Absolute, bool) {
	month, ok := p.month()
	if !ok || !p.whitespace() {
		return nil, false
	}
	day, ok := p.number()
	if !ok || !p.whitespace() {
		return nil, false
	}
	year, ok := p.number()
	if !ok {
		return nil, false
	}

	return datetime.YearMonthDay{Year: year, Month: month, Day: day}, true
}

func (p *Parser) monthDay() (datetime.Absolute, bool) {
	month, ok := p.month()
	if !ok || !p.whitespace() {
		return nil, false
	}
	day, ok := p.number()
	if !ok {
		return nil, false
	}

	return datetime.MonthDay{Month: month, Day: day}, true
}

// timeDuration
//
// Grammar:
//
//	time-duration   = time "+" duration
//	duration        = number ":" number
func (p *Parser) timeDuration() (datetime.DateTimeSpec, bool) {
	start, ok := p.time()
	if !ok || !p.Scanner.MatchLiteral("+") {
		return nil, false
	}
	hours, ok := p.number()
	if !ok || !p.Scanner.MatchLiteral(":") {
		return nil, false
	}
	minutes, ok := p.number()
	if !ok {
		return nil, false
	}

	return datetime.TimeRangeAbsoluteStartRelativeEnd{
		Start:    start,
		Duration: datetime.RelativeTime{Hours: hours, Minutes: minutes, HasMinutes: true},
	}, true
}

// timeRange
//
// Grammar:
//
//	time-range      = time ( "--" / "-" ) time
func (p *Parser) timeRange() (datetime.DateTimeSpec, bool) {
	start, ok := p.time()
	if !ok || !p.Scanner.MatchLiteral("-") {
		return nil, false
	}
	p.Scanner.MatchLiteral("-")

	end, ok := p.time()
	if !ok {
		return nil, false
	}

	return datetime.TimeRangeAbsoluteStartAbsoluteEnd{Start: start, End: end}, true
}

// dayOrTime
//
// Grammar:
//
//	day-or-time     = ( number WS month-name WS number ":" number ) / time / number
func (p *Parser) dayOrTime() (datetime.DateTimeSpec, bool) {
	absolute, ok := first(p.Scanner, p.dayMonthHourMinute, p.timeOfDay, p.dayOfMonth)
	if !ok {
		return nil, false
	}
	return datetime.AbsoluteSpec{Absolute: absolute}, true
}

func (p *Parser) dayMonthHourMinute() (datetime.Absolute, bool) {
	day, ok := p.number()
	if !ok || !p.whitespace() {
		return nil, false
	}
	month, ok := p.month()
	if !ok || !p.whitespace() {
		return nil, false
	}
	hour, ok := p.number()
	if !ok || !p.Scanner.MatchLiteral(":") {
		return nil, false
	}
	minute, ok := p.number()
	if !ok {
		return nil, false
	}

	return datetime.MonthDayTime{Month: month, Day: day, Hour: hour, Minute: minute}, true
}

func (p *Parser) timeOfDay() (datetime.Absolute, bool) {
	t, ok := p.time()
	if !ok {
		return nil, false
	}
	return datetime.TimeOfDay{Time: t}, true
}

func (p *Parser) dayOfMonth() (datetime.Absolute, bool) {
	day, ok := p.number()
	if !ok {
		return nil, false
	}
	return datetime.DayOfMonth{Day: day}, true
}

// isoWeek
//
// Grammar:
//
//	iso-week        = week-number
func (p *Parser) isoWeek() (datetime.DateTimeSpec, bool) {
	week, ok := p.isoWeekNumber()
	if !ok {
		return nil, false
	}
	return datetime.AbsoluteSpec{Absolute: datetime.WeekNumber{Week: week}}, true
}

// time
//
// Grammar:
//
//	time            = ( number ":" number meridiem ) / ( number meridiem ) /
//	                  ( number ":" number )
//	meridiem        = "am" / "pm"
func (p *Parser) time() (datetime.AbsoluteTime, bool) {
	return first(p.Scanner, p.hourMinuteMeridiem, p.hourMeridiem, p.hourMinute)
}

func (p *Parser) hourMinuteMeridiem() (datetime.AbsoluteTime, bool) {
	t, ok := p.hourMinute()
	if !ok {
		return t, false
	}
	t.Meridiem, ok = p.meridiem()
	return t, ok
}

func (p *Parser) hourMeridiem() (datetime.AbsoluteTime, bool) {
	hour, ok := p.number()
	if !ok {
		return datetime.AbsoluteTime{}, false
	}
	meridiem, ok := p.meridiem()
	if !ok {
		return datetime.AbsoluteTime{}, false
	}
	return datetime.AbsoluteTime{Hour: hour, Meridiem: meridiem}, true
}

func (p *Parser) hourMinute() (datetime.AbsoluteTime, bool) {
	hour, ok := p.number()
	if !ok || !p.Scanner.MatchLiteral(":") {
		return datetime.AbsoluteTime{}, false
	}
	minute, ok := p.number()
	if !ok {
		return datetime.AbsoluteTime{}, false
	}
	return datetime.AbsoluteTime{Hour: hour, Minute: minute, HasMinute: true}, true
}

func (p *Parser) meridiem() (datetime.Meridiem, bool) {
	switch {
	case p.Scanner.MatchFold("am"):
		return datetime.AM, true
	case p.Scanner.MatchFold("pm"):
		return datetime.PM, true
	}
	return datetime.NoMeridiem, false
}
