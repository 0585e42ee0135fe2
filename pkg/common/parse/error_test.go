/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import "testing"

func TestFormatError(t *testing.T) {
	err := NewSyntaxError(Location{Start: 4, End: 7}, "unexpected input")

	want := "Syntax error found in date prompt:\n" +
		"sep 3x2\n" +
		"    ^~~ unexpected input\n"

	if got := err.FormatError("sep 3x2"); got != want {
		t.Errorf("wanted:\n%q\ngot:\n%q", want, got)
	}
}

func TestFormatErrorEmptyRange(t *testing.T) {
	err := NewSyntaxError(Location{Start: 0, End: 0}, "no date found")

	want := "Syntax error found in date prompt:\n" +
		"?\n" +
		"^ no date found\n"

	if got := err.FormatError("?"); got != want {
		t.Errorf("wanted:\n%q\ngot:\n%q", want, got)
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	err := NewSyntaxError(Location{Start: 2, End: 3}, "no date found")
	if err.Error() != "no date found at position 2" {
		t.Errorf("unexpected error string %q", err.Error())
	}
}
