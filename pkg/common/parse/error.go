/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

// Location is a half-open byte range [Start, End) into the parsed input.
type Location struct {
	Start int
	End   int
}

type SyntaxError struct {
	Location Location
	Message  string
}

func NewSyntaxError(l Location, m string) SyntaxError {
	return SyntaxError{Location: l, Message: m}
}

func (s SyntaxError) Error() string {
	return fmt.Sprintf("%s at position %d", s.Message, s.Location.Start)
}

// FormatError renders the input with a caret under the offending range.
func (s SyntaxError) FormatError(input string) string {
	repeat := s.Location.End - s.Location.Start - 1
	if repeat < 0 {
		repeat = 0
	}

	errorString := "Syntax error found in date prompt:\n"
	errorString += input
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", s.Location.Start), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", s.Message)
	return errorString
}
